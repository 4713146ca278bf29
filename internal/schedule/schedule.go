// Package schedule computes the amortization schedules of the configured
// scenarios.
package schedule

import (
	"fmt"
	"time"

	"github.com/selimb/mortgage-calc/internal/config"
	"github.com/selimb/mortgage-calc/pkg/amortize"
	"github.com/selimb/mortgage-calc/pkg/constants"
	"github.com/selimb/mortgage-calc/pkg/datetime"
	"github.com/selimb/mortgage-calc/pkg/financial"
	"github.com/selimb/mortgage-calc/pkg/mathutil"
	"github.com/selimb/mortgage-calc/pkg/mortgage"
	"github.com/selimb/mortgage-calc/pkg/simulation"
	"go.uber.org/zap"
)

// Result holds the computed schedule of one scenario.
type Result struct {
	Name  string
	Rates []simulation.RateOverPeriod
	// Dates holds the month of each payment, parallel to Items.
	Dates   []string
	Items   []amortize.Item
	Summary amortize.Summary
	// Decimal is set when the scenario asks for the fixed-point schedule.
	Decimal *mortgage.Mortgage
}

// GetSchedules computes the schedules of all active scenarios. Payments of
// scenarios without a start date are dated from the current month.
func GetSchedules(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	return GetSchedulesWithFixedTime(logger, conf, time.Now())
}

// GetSchedulesWithFixedTime computes the schedules of all active scenarios
// with an injectable current time for testing.
func GetSchedulesWithFixedTime(logger *zap.Logger, conf config.Configuration, now time.Time) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	simulator := simulation.NewSimulator(logger)
	defaultStart := now.Format(config.DateTimeLayout)

	var results []Result
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "schedule.GetSchedules"),
			)
			continue
		}

		result, err := computeScenario(logger, simulator, scenario, defaultStart)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

func computeScenario(logger *zap.Logger, simulator *simulation.Simulator, scenario config.Scenario, defaultStart string) (Result, error) {
	result := Result{Name: scenario.Name, Rates: scenario.RatePeriods()}

	compound, err := scenario.CompoundMode()
	if err != nil {
		return result, fmt.Errorf("scenario '%s': %w", scenario.Name, err)
	}
	opts := scenario.SimulationOptions(compound)

	logger.Debug(fmt.Sprintf("computing scenario %s: %.2f over %d months with %d rate periods",
		scenario.Name, scenario.LoanAmount, scenario.Term, len(scenario.Rates)),
		zap.String("op", "schedule.GetSchedules"),
	)
	items, err := simulator.Simulate(scenario.LoanAmount, scenario.Term, result.Rates, opts...)
	if err != nil {
		return result, fmt.Errorf("scenario '%s': %w", scenario.Name, err)
	}
	result.Items = items
	result.Summary = amortize.Summarize(items)

	startDate := scenario.StartDate
	if startDate == "" {
		startDate = defaultStart
	}
	result.Dates, err = datetime.PaymentDates(startDate, len(items))
	if err != nil {
		return result, fmt.Errorf("scenario '%s': %w", scenario.Name, err)
	}

	if mathutil.IsPositive(result.Summary.Balance) {
		logger.Info(fmt.Sprintf("scenario %s leaves %.2f unpaid after %d payments",
			scenario.Name, result.Summary.Balance, result.Summary.Payments),
			zap.String("op", "schedule.GetSchedules"),
		)
	}

	if scenario.Decimal {
		m, err := decimalMortgage(logger, scenario, compound)
		if err != nil {
			return result, err
		}
		result.Decimal = m

		if len(items) > 0 {
			decimalPayment, _ := m.MonthlyPayment().Float64()
			if !mathutil.WithinTolerance(decimalPayment, items[0].Payment, constants.CurrencyTolerance) {
				logger.Info(fmt.Sprintf("scenario %s decimal payment %.2f differs from %.2f",
					scenario.Name, decimalPayment, items[0].Payment),
					zap.String("op", "schedule.GetSchedules"),
				)
			}
		}
	}

	return result, nil
}

// decimalMortgage builds the fixed-point mortgage for a scenario at its first
// rate over the whole term. The decimal mortgage compounds monthly.
func decimalMortgage(logger *zap.Logger, scenario config.Scenario, compound financial.Compound) (*mortgage.Mortgage, error) {
	if len(scenario.Rates) > 1 {
		logger.Warn(fmt.Sprintf("scenario %s has %d rate periods, the decimal schedule uses the first rate only",
			scenario.Name, len(scenario.Rates)),
			zap.String("op", "schedule.decimalMortgage"),
		)
	}
	if compound != financial.Monthly {
		logger.Warn(fmt.Sprintf("scenario %s compounds %s, the decimal schedule compounds monthly",
			scenario.Name, compound),
			zap.String("op", "schedule.decimalMortgage"),
		)
	}

	m, err := mortgage.New(mathutil.PercentToFraction(scenario.Rates[0].Rate), scenario.Term, scenario.LoanAmount)
	if err != nil {
		return nil, fmt.Errorf("scenario '%s': %w", scenario.Name, err)
	}
	return m, nil
}
