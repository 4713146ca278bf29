// Package mortgage provides a fixed-rate mortgage computed in fixed-point
// decimal arithmetic. The monthly payment is rounded up to the cent and each
// month's interest is rounded half up to the cent, so every figure in the
// schedule is an amount that can actually be paid.
package mortgage

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/selimb/mortgage-calc/pkg/constants"
	"github.com/shopspring/decimal"
)

// rateDigits is the precision the annual rate is quantised to.
const rateDigits = 6

var monthsPerYear = decimal.NewFromInt(constants.MonthsPerYear)

var (
	// ErrInvalidTerm is returned when the number of months is not positive.
	ErrInvalidTerm = errors.New("mortgage term must be positive")
	// ErrInvalidAmount is returned when the amount is not positive.
	ErrInvalidAmount = errors.New("mortgage amount must be positive")
	// ErrInvalidRate is returned for a negative or non-finite rate, or one so
	// high that the payment does not cover the first month's interest.
	ErrInvalidRate = errors.New("mortgage rate must not be negative")
)

// Mortgage is a fixed-rate loan with monthly payments.
type Mortgage struct {
	rate   float64
	months int
	amount decimal.Decimal
}

// Period is one month of a decimal schedule.
type Period struct {
	Number    int
	Principal decimal.Decimal
	Interest  decimal.Decimal
	// Balance is the balance left after this month's payment.
	Balance decimal.Decimal
}

// Dollar rounds an amount up to the cent.
func Dollar(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).RoundCeil(constants.CurrencyDigits)
}

// New creates a mortgage for amount at the nominal annual rate (a fraction,
// e.g. 0.05) repaid over months.
func New(rate float64, months int, amount float64) (*Mortgage, error) {
	switch {
	case months <= 0:
		return nil, fmt.Errorf("mortgage over %d months: %w", months, ErrInvalidTerm)
	case amount <= 0:
		return nil, fmt.Errorf("mortgage of %.2f: %w", amount, ErrInvalidAmount)
	case rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0):
		return nil, fmt.Errorf("mortgage at %v: %w", rate, ErrInvalidRate)
	}
	m := &Mortgage{
		rate:   rate,
		months: months,
		amount: Dollar(amount),
	}
	// Interest only shrinks as the balance does, so a payment that retires
	// principal in the first month retires it every month.
	if monthly, interest := m.MonthlyPayment(), m.interestOn(m.amount); !monthly.GreaterThan(interest) {
		return nil, fmt.Errorf("mortgage at %v: payment %s does not cover interest %s: %w",
			rate, monthly.StringFixed(constants.CurrencyDigits), interest.StringFixed(constants.CurrencyDigits), ErrInvalidRate)
	}
	return m, nil
}

// Rate returns the nominal annual rate.
func (m *Mortgage) Rate() float64 {
	return m.rate
}

// MonthGrowth returns the growth factor of the balance over one month.
func (m *Mortgage) MonthGrowth() float64 {
	return 1 + m.rate/constants.MonthsPerYear
}

// APY returns the effective annual rate.
func (m *Mortgage) APY() float64 {
	return math.Pow(m.MonthGrowth(), constants.MonthsPerYear) - 1
}

// LoanYears returns the term in years.
func (m *Mortgage) LoanYears() float64 {
	return float64(m.months) / constants.MonthsPerYear
}

// LoanMonths returns the term in months.
func (m *Mortgage) LoanMonths() int {
	return m.months
}

// Amount returns the loan amount.
func (m *Mortgage) Amount() decimal.Decimal {
	return m.amount
}

// MonthlyPayment returns the monthly payment rounded up to the cent.
func (m *Mortgage) MonthlyPayment() decimal.Decimal {
	amount, _ := m.amount.Float64()
	if m.rate == 0 {
		return Dollar(amount / float64(m.months))
	}
	discount := 1 - math.Pow(1/m.MonthGrowth(), float64(m.months))
	return Dollar(amount * m.rate / (constants.MonthsPerYear * discount))
}

// AnnualPayment returns twelve monthly payments.
func (m *Mortgage) AnnualPayment() decimal.Decimal {
	return m.MonthlyPayment().Mul(monthsPerYear)
}

// TotalPayout returns the monthly payment times the number of months.
func (m *Mortgage) TotalPayout() decimal.Decimal {
	return m.MonthlyPayment().Mul(decimal.NewFromInt(int64(m.months)))
}

// Schedule returns the monthly schedule. The month whose payment covers the
// balance plus its interest pays off exactly that and ends the schedule, so
// the last payment is usually smaller than the others.
func (m *Mortgage) Schedule() []Period {
	monthly := m.MonthlyPayment()
	balance := m.amount

	schedule := make([]Period, 0, m.months)
	for number := 1; ; number++ {
		interest := m.interestOn(balance)
		if monthly.GreaterThanOrEqual(balance.Add(interest)) {
			schedule = append(schedule, Period{
				Number:    number,
				Principal: balance,
				Interest:  interest,
				Balance:   decimal.Zero,
			})
			return schedule
		}
		principal := monthly.Sub(interest)
		balance = balance.Sub(principal)
		schedule = append(schedule, Period{
			Number:    number,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
}

// interestOn returns one month of interest on balance, rounded half up to the
// cent on the annual rate quantised to rateDigits.
func (m *Mortgage) interestOn(balance decimal.Decimal) decimal.Decimal {
	rate := decimal.NewFromFloat(m.rate).RoundBank(rateDigits)
	return balance.Mul(rate).Div(monthsPerYear).Round(constants.CurrencyDigits)
}

// TotalInterest returns the interest paid over the whole schedule.
func (m *Mortgage) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, period := range m.Schedule() {
		total = total.Add(period.Interest)
	}
	return total
}

// Summary writes the mortgage figures as an aligned label/value listing.
func (m *Mortgage) Summary(w io.Writer) error {
	lines := []struct {
		label string
		value string
	}{
		{"Rate", fmt.Sprintf("%12.6f", m.Rate())},
		{"Month Growth", fmt.Sprintf("%12.6f", m.MonthGrowth())},
		{"APY", fmt.Sprintf("%12.6f", m.APY())},
		{"Payoff Years", fmt.Sprintf("%12.0f", m.LoanYears())},
		{"Payoff Months", fmt.Sprintf("%12d", m.LoanMonths())},
		{"Amount", fmt.Sprintf("%12s", m.Amount().StringFixed(constants.CurrencyDigits))},
		{"Monthly Payment", fmt.Sprintf("%12s", m.MonthlyPayment().StringFixed(constants.CurrencyDigits))},
		{"Annual Payment", fmt.Sprintf("%12s", m.AnnualPayment().StringFixed(constants.CurrencyDigits))},
		{"Total Payout", fmt.Sprintf("%12s", m.TotalPayout().StringFixed(constants.CurrencyDigits))},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%25s:  %s\n", line.label, line.value); err != nil {
			return err
		}
	}
	return nil
}
