// Package output provides utilities for formatting and displaying amortization
// schedules.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/selimb/mortgage-calc/internal/schedule"
	"github.com/selimb/mortgage-calc/pkg/amortize"
	"github.com/selimb/mortgage-calc/pkg/format"
	"github.com/selimb/mortgage-calc/pkg/mathutil"
	"github.com/selimb/mortgage-calc/pkg/simulation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var columns = []string{
	"Payment #", "Date", "Payment", "Principal", "Interest",
	"Principal total", "Interest total", "Balance",
}

// PrettyFormat writes a human-readable rather than machine-readable table per
// scenario. With rounded set, amounts other than the payment are printed in
// whole units.
func PrettyFormat(w io.Writer, results []schedule.Result, rounded bool) error {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		if _, err := fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name); err != nil {
			return err
		}
		if len(result.Rates) > 0 {
			if _, err := fmt.Fprintf(w, "Rates: %s\n", describeRates(result.Rates)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(columns, " | ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, strings.Join(underlines(columns), " | ")); err != nil {
			return err
		}

		for n, item := range result.Items {
			cells := amounts(item, rounded)
			if _, err := p.Fprintf(w, "%d | %s | %s | %s | %s | %s | %s | %s\n",
				item.PaymentNumber, date(result, n),
				cells[0], cells[1], cells[2], cells[3], cells[4], cells[5]); err != nil {
				return err
			}
		}

		s := result.Summary
		owing := "paid off"
		if !mathutil.IsZero(s.Balance) {
			owing = format.Currency(s.Balance) + " left owing"
		}
		if _, err := fmt.Fprintf(w, "Paid %s over %d payments, %s in interest, %s\n",
			format.Currency(s.TotalPaid), s.Payments, format.Currency(s.TotalInterest), owing); err != nil {
			return err
		}

		if result.Decimal != nil {
			if _, err := fmt.Fprintln(w, "Decimal schedule:"); err != nil {
				return err
			}
			if err := result.Decimal.Summary(w); err != nil {
				return err
			}
		}

		if i < len(results)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// CsvFormat writes comma-separated values, one row per payment of every
// scenario.
func CsvFormat(w io.Writer, results []schedule.Result, rounded bool) error {
	header := make([]string, 0, len(columns)+1)
	header = append(header, `"scenario"`)
	for _, column := range columns {
		header = append(header, fmt.Sprintf("%q", strings.ToLower(column)))
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, ",")); err != nil {
		return err
	}

	for _, result := range results {
		for n, item := range result.Items {
			if rounded {
				item = item.Rounded()
			}
			if _, err := fmt.Fprintf(w, `"%s","%d","%s","%.2f","%s","%s","%s","%s","%s"`+"\n",
				result.Name, item.PaymentNumber, date(result, n), item.Payment,
				plain(item.Principal, rounded), plain(item.Interest, rounded),
				plain(item.PrincipalTotal, rounded), plain(item.InterestTotal, rounded),
				plain(item.Balance, rounded)); err != nil {
				return err
			}
		}
	}
	return nil
}

// amounts renders the monetary columns of an item for the pretty table.
func amounts(item amortize.Item, rounded bool) [6]string {
	if rounded {
		r := item.Rounded()
		return [6]string{
			format.Currency(item.Payment),
			format.Whole(r.Principal), format.Whole(r.Interest),
			format.Whole(r.PrincipalTotal), format.Whole(r.InterestTotal),
			format.Whole(r.Balance),
		}
	}
	return [6]string{
		format.Currency(item.Payment),
		format.Currency(item.Principal), format.Currency(item.Interest),
		format.Currency(item.PrincipalTotal), format.Currency(item.InterestTotal),
		format.Currency(item.Balance),
	}
}

func describeRates(rates []simulation.RateOverPeriod) string {
	parts := make([]string, len(rates))
	for i, rate := range rates {
		parts[i] = fmt.Sprintf("%s for %d months", format.Percent(rate.AnnualRatePercent), rate.Months)
	}
	return strings.Join(parts, ", ")
}

func plain(amount float64, rounded bool) string {
	if rounded {
		return fmt.Sprintf("%.0f", amount)
	}
	return fmt.Sprintf("%.2f", amount)
}

func date(result schedule.Result, n int) string {
	if n < len(result.Dates) {
		return result.Dates[n]
	}
	return ""
}

func underlines(headers []string) []string {
	lines := make([]string, len(headers))
	for i, header := range headers {
		lines[i] = strings.Repeat("_", len(header))
	}
	return lines
}
