package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Centris payment", 1744.8137, 1744.81},
		{"Half cent goes up", 1.235, 1.24},
		{"First interest", 1236.9863, 1236.99},
		{"Final balance drift", 0.0000003, 0},
		{"Negative drift", -0.004, 0},
		{"Total interest", 223443.518, 223443.52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		digits   int
		expected float64
	}{
		{"Two digits", 657.1289, 2, 657.13},
		{"Zero digits", 1236.99, 0, 1237},
		{"Four digits", 0.0041239, 4, 0.0041},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundTo(tt.input, tt.digits)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("RoundTo(%v, %d) = %v, expected %v", tt.input, tt.digits, result, tt.expected)
			}
		})
	}
}

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round down", 507.81, 508},
		{"Round half away from zero", 1236.5, 1237},
		{"Tiny negative becomes zero", -0.0000001, 0},
		{"Large balance", 299491.79, 299492},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundWhole(tt.input)
			if result != tt.expected {
				t.Errorf("RoundWhole(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
			if math.Signbit(result) && result == 0 {
				t.Errorf("RoundWhole(%v) returned negative zero", tt.input)
			}
		})
	}
}

func TestTolerances(t *testing.T) {
	tests := []struct {
		name         string
		balance      float64
		wantZero     bool
		wantPositive bool
	}{
		{"Paid off", 0, true, false},
		{"Rounding dust", 0.004, true, false},
		{"Overpaid dust", -0.004, true, false},
		{"Exactly a cent", 0.01, true, false},
		{"Two cents owed", 0.02, false, true},
		{"Balance left after first term", 272186.35, false, true},
		{"Overpaid", -5, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.balance); got != tt.wantZero {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.balance, got, tt.wantZero)
			}
			if got := IsPositive(tt.balance); got != tt.wantPositive {
				t.Errorf("IsPositive(%v) = %v, expected %v", tt.balance, got, tt.wantPositive)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	// Decimal and float payments for 10,000 at 8% over 10 months.
	if !WithinTolerance(1037.04, 1037.03, 0.0101) {
		t.Errorf("payments a cent apart should be within a cent")
	}
	if WithinTolerance(1753.77, 1744.81, 0.01) {
		t.Errorf("monthly and semi-annual payments should differ")
	}
	if !WithinTolerance(223444, 223443.52, 1) {
		t.Errorf("whole-unit totals should be within a unit")
	}
}

func TestPercentToFraction(t *testing.T) {
	if got := PercentToFraction(5); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("PercentToFraction(5) = %v, expected 0.05", got)
	}
	if got := PercentToFraction(0); got != 0 {
		t.Errorf("PercentToFraction(0) = %v, expected 0", got)
	}
}
