// Package financial provides the closed-form loan formulas: the fixed periodic
// payment, the interest portion of a given payment, and the conversion of a
// nominal annual rate into an effective monthly rate.
package financial

import (
	"fmt"
	"math"

	"github.com/selimb/mortgage-calc/pkg/constants"
)

// Compound is the convention used to turn a nominal annual rate into a
// monthly rate.
type Compound int

const (
	// SemiAnnual compounds twice a year. This is the default since Canadian
	// mortgage rates are compounded semi-annually by law.
	SemiAnnual Compound = iota
	// Monthly compounds every month, so the monthly rate is annual/12.
	Monthly
)

// String returns the configuration name of the compounding mode.
func (c Compound) String() string {
	switch c {
	case SemiAnnual:
		return constants.CompoundSemiAnnual
	case Monthly:
		return constants.CompoundMonthly
	default:
		return fmt.Sprintf("Compound(%d)", int(c))
	}
}

// periodsPerYear returns the number of compounding periods in a year.
func (c Compound) periodsPerYear() float64 {
	switch c {
	case SemiAnnual:
		return constants.SemiAnnualPeriodsPerYear
	case Monthly:
		return constants.MonthsPerYear
	default:
		panic(fmt.Sprintf("financial: unsupported compounding mode %d", int(c)))
	}
}

// ParseCompound maps a configuration value to a Compound. An empty string
// selects the semi-annual default.
func ParseCompound(s string) (Compound, error) {
	switch s {
	case "", constants.CompoundSemiAnnual:
		return SemiAnnual, nil
	case constants.CompoundMonthly:
		return Monthly, nil
	default:
		return SemiAnnual, fmt.Errorf("unsupported compounding mode %q, expected %s or %s",
			s, constants.CompoundSemiAnnual, constants.CompoundMonthly)
	}
}

// PMT returns the fixed periodic payment that retires principal in
// paymentsCount payments at the periodic rate, like PMT in a spreadsheet
// (with a positive sign).
//
// A zero rate pays principal/paymentsCount per period. PMT panics if
// paymentsCount is not positive.
func PMT(rate float64, paymentsCount int, principal float64) float64 {
	if paymentsCount <= 0 {
		panic(fmt.Sprintf("financial: payments count must be positive, got %d", paymentsCount))
	}
	n := float64(paymentsCount)
	if rate == 0 {
		return principal / n
	}
	return (rate * principal) / (1 - math.Pow(1+rate, -n))
}

// BalanceAfter returns the outstanding balance once the given number of
// fixed payments have been made.
func BalanceAfter(rate float64, paymentsMade, paymentsCount int, principal float64) float64 {
	payment := PMT(rate, paymentsCount, principal)
	k := float64(paymentsMade)
	if rate == 0 {
		return principal - k*payment
	}
	growth := math.Pow(1+rate, k)
	return principal*growth - payment*(growth-1)/rate
}

// IPMT returns the interest portion of payment number period (1-based) of a
// fixed-payment loan, like IPMT in a spreadsheet but with a positive sign.
//
// IPMT panics if period is outside [1, paymentsCount].
func IPMT(rate float64, period, paymentsCount int, principal float64) float64 {
	if period < 1 || period > paymentsCount {
		panic(fmt.Sprintf("financial: period %d outside of [1, %d]", period, paymentsCount))
	}
	return BalanceAfter(rate, period-1, paymentsCount, principal) * rate
}

// RateCalc converts a nominal annual rate (a fraction, e.g. 0.05) into the
// effective monthly rate under the given compounding mode.
//
// For semi-annual compounding the half-year rate annual/2 is converted into
// the monthly rate that compounds to the same growth over six months.
func RateCalc(rateAnnual float64, compound Compound) float64 {
	periods := compound.periodsPerYear()
	monthsPerPeriod := constants.MonthsPerYear / periods
	if monthsPerPeriod == 1 {
		return rateAnnual / periods
	}
	return math.Pow(rateAnnual/periods+1, 1/monthsPerPeriod) - 1
}
