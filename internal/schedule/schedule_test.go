package schedule_test

import (
	"errors"
	"testing"
	"time"

	"github.com/selimb/mortgage-calc/internal/config"
	"github.com/selimb/mortgage-calc/internal/schedule"
	"github.com/selimb/mortgage-calc/pkg/amortize"
	"github.com/selimb/mortgage-calc/pkg/simulation"
	"github.com/selimb/mortgage-calc/pkg/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedTime = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func boolPtr(b bool) *bool {
	return &b
}

func TestGetSchedulesFromTestConfig(t *testing.T) {
	conf, err := config.LoadConfiguration("../config/testdata/test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	results, err := schedule.GetSchedulesWithFixedTime(zap.NewNop(), *conf, fixedTime)
	if err != nil {
		t.Fatalf("GetSchedules() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, expected the 2 active scenarios", len(results))
	}

	centris := testutil.FindResult(results, "centris example")
	if centris == nil {
		t.Fatal("centris example result not found")
	}
	if centris.Summary.Payments != 300 || centris.Summary.Balance != 0 {
		t.Errorf("centris summary = %+v", centris.Summary)
	}
	first := centris.Items[0].Rounded()
	if first.Principal != 508 || first.Interest != 1237 || first.Balance != 299492 {
		t.Errorf("first centris payment = %+v", first)
	}
	if centris.Dates[0] != "2025-01" || centris.Dates[299] != "2049-12" {
		t.Errorf("centris dates run %s to %s, expected 2025-01 to 2049-12", centris.Dates[0], centris.Dates[299])
	}
	if centris.Decimal != nil {
		t.Errorf("centris scenario did not ask for a decimal schedule")
	}

	renewal := testutil.FindResult(results, "renewal at lower rate")
	if renewal == nil {
		t.Fatal("renewal result not found")
	}
	if len(renewal.Rates) != 2 || renewal.Rates[1].AnnualRatePercent != 4 {
		t.Errorf("renewal rates = %+v", renewal.Rates)
	}
	if len(renewal.Items) != 60 {
		t.Errorf("renewal has %d payments, expected 60 without extrapolation", len(renewal.Items))
	}
	if renewal.Summary.Balance <= 0 {
		t.Errorf("renewal balance = %.2f, expected money still owed", renewal.Summary.Balance)
	}
	// Without a start date the payments start in the current month.
	if renewal.Dates[0] != "2025-06" {
		t.Errorf("renewal starts %s, expected 2025-06", renewal.Dates[0])
	}
	if len(renewal.Dates) != len(renewal.Items) {
		t.Errorf("%d dates for %d payments", len(renewal.Dates), len(renewal.Items))
	}
}

func TestGetSchedulesDecimal(t *testing.T) {
	conf := config.Configuration{
		Scenarios: []config.Scenario{
			{
				Name:       "decimal",
				Active:     true,
				LoanAmount: 10000,
				Term:       10,
				Compound:   "month",
				Decimal:    true,
				Rates:      []config.Rate{{Rate: 8, Months: 10}},
			},
		},
	}

	results, err := schedule.GetSchedulesWithFixedTime(zap.NewNop(), conf, fixedTime)
	if err != nil {
		t.Fatalf("GetSchedules() error = %v", err)
	}
	result := testutil.FindResult(results, "decimal")
	if result == nil || result.Decimal == nil {
		t.Fatalf("decimal result = %+v, expected a decimal mortgage", result)
	}
	if got := result.Decimal.MonthlyPayment().StringFixed(2); got != "1037.04" {
		t.Errorf("decimal payment = %s, expected 1037.04", got)
	}
	if result.Items[0].Payment != 1037.03 {
		t.Errorf("float payment = %.2f, expected 1037.03", result.Items[0].Payment)
	}
	if len(result.Decimal.Schedule()) != len(result.Items) {
		t.Errorf("decimal schedule has %d periods, float schedule %d",
			len(result.Decimal.Schedule()), len(result.Items))
	}
}

func TestGetSchedulesDecimalWarnsOnMismatch(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	conf := config.Configuration{
		Scenarios: []config.Scenario{
			{
				Name:       "renewals",
				Active:     true,
				LoanAmount: 300000,
				Term:       300,
				Decimal:    true,
				Rates:      []config.Rate{{Rate: 5, Months: 60}, {Rate: 4, Months: 60}},
			},
		},
	}

	if _, err := schedule.GetSchedulesWithFixedTime(zap.New(core), conf, fixedTime); err != nil {
		t.Fatalf("GetSchedules() error = %v", err)
	}
	if logs.Len() != 2 {
		t.Errorf("got %d warnings, expected one for the rate periods and one for compounding", logs.Len())
	}
}

func TestGetSchedulesDecimalMonthlyDoesNotWarn(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	conf := config.Configuration{
		Scenarios: []config.Scenario{
			{
				Name:       "monthly",
				Active:     true,
				LoanAmount: 240000,
				Term:       360,
				Compound:   "month",
				Decimal:    true,
				Rates:      []config.Rate{{Rate: 6, Months: 360}},
			},
		},
	}

	if _, err := schedule.GetSchedulesWithFixedTime(zap.New(core), conf, fixedTime); err != nil {
		t.Fatalf("GetSchedules() error = %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("got %d warnings for a single monthly rate, expected none", logs.Len())
	}
}

func TestGetSchedulesSkipsInactive(t *testing.T) {
	conf := config.Configuration{
		Scenarios: []config.Scenario{
			{Name: "inactive", Active: false},
			{
				Name:        "active",
				Active:      true,
				LoanAmount:  50000,
				Term:        60,
				Extrapolate: boolPtr(true),
				Rates:       []config.Rate{{Rate: 3, Months: 60}},
			},
		},
	}

	results, err := schedule.GetSchedulesWithFixedTime(nil, conf, fixedTime)
	if err != nil {
		t.Fatalf("GetSchedules() error = %v", err)
	}
	if len(results) != 1 || results[0].Name != "active" {
		t.Errorf("results = %+v, expected only the active scenario", results)
	}
}

func TestGetSchedulesErrors(t *testing.T) {
	tests := []struct {
		name     string
		scenario config.Scenario
		expected error
	}{
		{
			name:     "No rates",
			scenario: config.Scenario{Name: "no rates", Active: true, LoanAmount: 1000, Term: 12},
			expected: simulation.ErrNoRates,
		},
		{
			name: "Bad start date",
			scenario: config.Scenario{Name: "bad date", Active: true, LoanAmount: 1000, Term: 12,
				StartDate: "soon", Rates: []config.Rate{{Rate: 5, Months: 12}}},
		},
		{
			name: "Rate the payment cannot retire",
			scenario: config.Scenario{Name: "usury", Active: true, LoanAmount: 100000, Term: 300,
				Compound: "month", Rates: []config.Rate{{Rate: 600, Months: 300}}},
			expected: amortize.ErrInvalidRate,
		},
		{
			name: "Bad compound",
			scenario: config.Scenario{Name: "bad compound", Active: true, LoanAmount: 1000, Term: 12,
				Compound: "daily", Rates: []config.Rate{{Rate: 5, Months: 12}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := config.Configuration{Scenarios: []config.Scenario{tt.scenario}}
			_, err := schedule.GetSchedulesWithFixedTime(zap.NewNop(), conf, fixedTime)
			if err == nil {
				t.Fatal("GetSchedules() expected error")
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Errorf("GetSchedules() error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestGetSchedulesUsesCurrentMonth(t *testing.T) {
	conf := config.Configuration{
		Scenarios: []config.Scenario{
			{Name: "now", Active: true, LoanAmount: 1200, Term: 12, Rates: []config.Rate{{Rate: 0, Months: 12}}},
		},
	}
	results, err := schedule.GetSchedules(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetSchedules() error = %v", err)
	}
	if results[0].Dates[0] != time.Now().Format(config.DateTimeLayout) {
		t.Errorf("first payment dated %s, expected the current month", results[0].Dates[0])
	}
}
