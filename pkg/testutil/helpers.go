// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/selimb/mortgage-calc/internal/schedule"
	"github.com/selimb/mortgage-calc/pkg/amortize"
)

// FindResult finds a scenario result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []schedule.Result, name string) *schedule.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// FindPayment returns the item with the given payment number, or nil.
func FindPayment(items []amortize.Item, paymentNumber int) *amortize.Item {
	for i := range items {
		if items[i].PaymentNumber == paymentNumber {
			return &items[i]
		}
	}
	return nil
}
