// Package simulation composes fixed-rate amortization schedules into one
// schedule spanning several rate periods, e.g. successive mortgage renewals.
package simulation

import (
	"errors"
	"fmt"

	"github.com/selimb/mortgage-calc/pkg/amortize"
	"github.com/selimb/mortgage-calc/pkg/financial"
	"github.com/selimb/mortgage-calc/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrNoRates is returned when a simulation is given no rate periods.
var ErrNoRates = errors.New("at least one rate period is required")

// RateOverPeriod is a rate applying for a number of months.
type RateOverPeriod struct {
	// AnnualRatePercent is the nominal annual rate as a percentage, e.g. 5 for 5%.
	AnnualRatePercent float64
	Months            int
}

type options struct {
	extrapolate bool
	compound    financial.Compound
}

// Option configures a simulation.
type Option func(*options)

// WithExtrapolate controls whether a balance left after the last rate period
// is amortized over the rest of the term at the last rate. Defaults to true.
func WithExtrapolate(extrapolate bool) Option {
	return func(o *options) {
		o.extrapolate = extrapolate
	}
}

// WithCompound selects the compounding mode used to convert annual rates.
// Defaults to financial.SemiAnnual.
func WithCompound(compound financial.Compound) Option {
	return func(o *options) {
		o.compound = compound
	}
}

// Simulator computes multi-rate amortization schedules.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a new simulator instance
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// AmortizeMulti computes the amortization schedule for a loan at varying
// rates without logging. See Simulator.Simulate.
func AmortizeMulti(loanAmount float64, loanTerm int, rates []RateOverPeriod, opts ...Option) ([]amortize.Item, error) {
	return NewSimulator(nil).Simulate(loanAmount, loanTerm, rates, opts...)
}

// Simulate computes the amortization schedule of loanAmount over loanTerm
// months where each rate period in turn re-amortizes the outstanding balance
// over the months left in the term, as a renewal does, and keeps only its own
// months.
//
// Rate periods reached after the loan is paid off or after the term is used
// up are ignored. If a balance remains after the last period and
// extrapolation is on, the rest of the term is amortized at the last rate.
func (s *Simulator) Simulate(loanAmount float64, loanTerm int, rates []RateOverPeriod, opts ...Option) ([]amortize.Item, error) {
	if len(rates) == 0 {
		return nil, ErrNoRates
	}
	if loanTerm <= 0 {
		return nil, fmt.Errorf("simulate over %d months: %w", loanTerm, amortize.ErrInvalidTerm)
	}
	if loanAmount <= 0 {
		return nil, fmt.Errorf("simulate %.2f: %w", loanAmount, amortize.ErrInvalidAmount)
	}

	o := options{extrapolate: true, compound: financial.SemiAnnual}
	for _, opt := range opts {
		opt(&o)
	}

	var schedule []amortize.Item
	balance := loanAmount
	monthsLeft := loanTerm
	var last *amortize.Item

	for i, rate := range rates {
		if balance <= 0 || monthsLeft <= 0 {
			s.logger.Debug(fmt.Sprintf("ignoring rate period %d of %d, loan is over", i+1, len(rates)),
				zap.String("op", "simulation.Simulate"),
				zap.Float64("balance", balance),
				zap.Int("months_left", monthsLeft),
			)
			break
		}

		s.logger.Debug(fmt.Sprintf("amortizing %.2f over %d months at %.3f%% for %d months",
			balance, monthsLeft, rate.AnnualRatePercent, rate.Months),
			zap.String("op", "simulation.Simulate"),
			zap.Int("period", i+1),
		)
		segment, err := amortize.Amortize(balance, monthlyRate(rate, o.compound), monthsLeft, last)
		if err != nil {
			return schedule, fmt.Errorf("rate period %d: %w", i+1, err)
		}
		segment = amortize.Truncate(segment, rate.Months)
		if len(segment) == 0 {
			continue
		}

		schedule = append(schedule, segment...)
		end := segment[len(segment)-1]
		last = &end
		balance = end.Balance
		monthsLeft = loanTerm - end.PaymentNumber
	}

	if balance > 0 && o.extrapolate && monthsLeft > 0 {
		rate := rates[len(rates)-1]
		s.logger.Debug(fmt.Sprintf("extrapolating %.2f over the remaining %d months at %.3f%%",
			balance, monthsLeft, rate.AnnualRatePercent),
			zap.String("op", "simulation.Simulate"),
		)
		rest, err := amortize.Amortize(balance, monthlyRate(rate, o.compound), monthsLeft, last)
		if err != nil {
			return schedule, fmt.Errorf("extrapolation: %w", err)
		}
		schedule = append(schedule, rest...)
	}

	return schedule, nil
}

func monthlyRate(rate RateOverPeriod, compound financial.Compound) float64 {
	return financial.RateCalc(mathutil.PercentToFraction(rate.AnnualRatePercent), compound)
}
