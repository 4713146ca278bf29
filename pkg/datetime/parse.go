// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/selimb/mortgage-calc/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// ValidateDate checks that a date is in the DateTimeLayout format.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM: %w", date, err)
	}
	return nil
}

// PaymentDates returns the month of every payment of a schedule of count
// payments whose first payment falls in startDate.
func PaymentDates(startDate string, count int) ([]string, error) {
	if err := ValidateDate(startDate); err != nil {
		return nil, err
	}
	dates := make([]string, count)
	for i := range dates {
		date, err := OffsetDate(startDate, DateTimeLayout, i)
		if err != nil {
			return nil, err
		}
		dates[i] = date
	}
	return dates, nil
}
