package validation

import (
	"errors"
	"fmt"

	"github.com/selimb/mortgage-calc/pkg/datetime"
	"github.com/selimb/mortgage-calc/pkg/financial"
)

// ConfigValidator checks a set of scenarios.
type ConfigValidator struct {
	Scenarios []ScenarioConfig
}

// ScenarioConfig is the part of a scenario that validation looks at.
type ScenarioConfig struct {
	Name       string
	Active     bool
	LoanAmount float64
	Term       int
	StartDate  string
	Compound   string
	Rates      []RateConfig
}

// RateConfig is one rate period of a scenario.
type RateConfig struct {
	Rate   float64
	Months int
}

// ValidateScenario returns an error describing every problem that prevents
// the scenario from being computed.
func ValidateScenario(scenario ScenarioConfig) error {
	var errs []error

	if scenario.Name == "" {
		errs = append(errs, errors.New("scenario has no name"))
	}
	if scenario.LoanAmount <= 0 {
		errs = append(errs, fmt.Errorf("loan amount must be positive, got %.2f", scenario.LoanAmount))
	}
	if scenario.Term <= 0 {
		errs = append(errs, fmt.Errorf("term must be a positive number of months, got %d", scenario.Term))
	}
	if len(scenario.Rates) == 0 {
		errs = append(errs, errors.New("at least one rate period is required"))
	}
	for i, rate := range scenario.Rates {
		if rate.Months < 0 {
			errs = append(errs, fmt.Errorf("rate period %d has negative months %d", i+1, rate.Months))
		}
		if rate.Rate < 0 {
			errs = append(errs, fmt.Errorf("rate period %d has negative rate %.3f", i+1, rate.Rate))
		}
	}
	if _, err := financial.ParseCompound(scenario.Compound); err != nil {
		errs = append(errs, err)
	}
	if scenario.StartDate != "" {
		if err := datetime.ValidateDate(scenario.StartDate); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("scenario '%s': %w", scenario.Name, err)
	}
	return nil
}

// ValidateRatePeriods returns warnings for rate periods that will not be used
// as written.
func ValidateRatePeriods(scenarioName string, term int, rates []RateConfig) []string {
	var warnings []string

	months := 0
	for i, rate := range rates {
		if rate.Months == 0 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' rate period %d lasts zero months and is skipped",
				scenarioName, i+1))
		}
		months += rate.Months
		if months > term && months-rate.Months < term {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' rate periods exceed the %d month term at period %d, later months are dropped",
				scenarioName, term, i+1))
		} else if months-rate.Months >= term && term > 0 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' rate period %d starts after the term and is ignored",
				scenarioName, i+1))
		}
	}

	return warnings
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	active := 0
	names := make(map[string]bool)
	for _, scenario := range cv.Scenarios {
		if names[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", scenario.Name))
		}
		names[scenario.Name] = true

		if !scenario.Active {
			continue
		}
		active++
		warnings = append(warnings, ValidateRatePeriods(scenario.Name, scenario.Term, scenario.Rates)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios found")
	}

	return warnings
}
