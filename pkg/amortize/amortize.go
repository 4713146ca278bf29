// Package amortize computes fixed-rate amortization schedules.
package amortize

import (
	"errors"
	"fmt"
	"math"

	"github.com/selimb/mortgage-calc/pkg/constants"
	"github.com/selimb/mortgage-calc/pkg/financial"
	"github.com/selimb/mortgage-calc/pkg/mathutil"
)

var (
	// ErrInvalidTerm is returned when the number of payments is not positive.
	ErrInvalidTerm = errors.New("payments count must be positive")
	// ErrInvalidAmount is returned when the loan amount is not positive.
	ErrInvalidAmount = errors.New("loan amount must be positive")
	// ErrInvalidRate is returned for rates that can never retire the loan,
	// including rates so high that the payment only covers the interest.
	ErrInvalidRate = errors.New("monthly rate must be a finite number greater than -1 and low enough to retire the loan")
)

// Item holds the values for one payment period.
type Item struct {
	PaymentNumber  int
	Payment        float64
	Principal      float64
	Interest       float64
	PrincipalTotal float64
	InterestTotal  float64
	Balance        float64
}

// Rounded returns a copy of the item with every amount except Payment rounded
// to the nearest whole unit.
func (i Item) Rounded() Item {
	return Item{
		PaymentNumber:  i.PaymentNumber,
		Payment:        i.Payment,
		Principal:      mathutil.RoundWhole(i.Principal),
		Interest:       mathutil.RoundWhole(i.Interest),
		PrincipalTotal: mathutil.RoundWhole(i.PrincipalTotal),
		InterestTotal:  mathutil.RoundWhole(i.InterestTotal),
		Balance:        mathutil.RoundWhole(i.Balance),
	}
}

// Amortize computes the amortization schedule of loanAmount repaid over
// paymentsCount months at a fixed monthly rate, as returned by
// financial.RateCalc.
//
// When last is not nil the schedule continues from it: payment numbers follow
// last.PaymentNumber and the running totals start from last's totals. This is
// how schedules for successive rate periods are stitched together, e.g. three
// years at 5% followed by two years at 4%:
//
//	first, _ := Amortize(300000, financial.RateCalc(0.05, financial.SemiAnnual), 300, nil)
//	first = first[:36]
//	end := first[len(first)-1]
//	second, _ := Amortize(end.Balance, financial.RateCalc(0.04, financial.SemiAnnual), 300-36, &end)
//	second = second[:24]
//
// The schedule runs until the balance is paid off. The last period pays
// exactly the remaining balance so the final balance is never negative. A
// period whose payment retires no principal fails with ErrInvalidRate.
func Amortize(loanAmount, rateMonthly float64, paymentsCount int, last *Item) ([]Item, error) {
	if paymentsCount <= 0 {
		return nil, fmt.Errorf("amortize %.2f over %d months: %w", loanAmount, paymentsCount, ErrInvalidTerm)
	}
	if loanAmount <= 0 {
		return nil, fmt.Errorf("amortize %.2f over %d months: %w", loanAmount, paymentsCount, ErrInvalidAmount)
	}
	if math.IsNaN(rateMonthly) || math.IsInf(rateMonthly, 0) || rateMonthly <= -1 {
		return nil, fmt.Errorf("amortize at monthly rate %v: %w", rateMonthly, ErrInvalidRate)
	}

	number := 1
	principalTotal := 0.0
	interestTotal := 0.0
	if last != nil {
		number = last.PaymentNumber + 1
		principalTotal = last.PrincipalTotal
		interestTotal = last.InterestTotal
	}

	payment := financial.PMT(rateMonthly, paymentsCount, loanAmount)
	schedule := make([]Item, 0, paymentsCount)
	balance := loanAmount
	for {
		// Accumulate the totals rather than recomputing them with IPMT so
		// stitched schedules carry on from the previous segment's totals.
		interest := balance * rateMonthly
		principal := payment - interest
		current := payment
		final := balance+interest-payment < constants.HalfCent
		if final {
			principal = balance
			current = principal + interest
		} else if principal <= 0 {
			return nil, fmt.Errorf("amortize %.2f at monthly rate %v: payment %.2f does not cover the interest: %w",
				loanAmount, rateMonthly, payment, ErrInvalidRate)
		}
		interestTotal += interest
		principalTotal += principal
		balance -= principal
		if final {
			balance = 0
		}

		schedule = append(schedule, Item{
			PaymentNumber:  number,
			Payment:        mathutil.RoundTo(current, constants.CurrencyDigits),
			Principal:      mathutil.RoundTo(principal, constants.CurrencyDigits),
			Interest:       mathutil.RoundTo(interest, constants.CurrencyDigits),
			PrincipalTotal: mathutil.RoundTo(principalTotal, constants.CurrencyDigits),
			InterestTotal:  mathutil.RoundTo(interestTotal, constants.CurrencyDigits),
			Balance:        mathutil.RoundTo(balance, constants.CurrencyDigits),
		})
		if final {
			break
		}
		number++
	}
	return schedule, nil
}

// Truncate returns at most months leading items of schedule.
func Truncate(schedule []Item, months int) []Item {
	if months < 0 {
		months = 0
	}
	if len(schedule) > months {
		return schedule[:months]
	}
	return schedule
}

// Summary holds aggregate figures for a schedule.
type Summary struct {
	Payments      int
	TotalPaid     float64
	TotalInterest float64
	Balance       float64
}

// Summarize aggregates a schedule. The totals are read from the last item
// since they already run across stitched segments.
func Summarize(schedule []Item) Summary {
	if len(schedule) == 0 {
		return Summary{}
	}
	last := schedule[len(schedule)-1]
	return Summary{
		Payments:      len(schedule),
		TotalPaid:     mathutil.Round(last.PrincipalTotal + last.InterestTotal),
		TotalInterest: last.InterestTotal,
		Balance:       last.Balance,
	}
}
