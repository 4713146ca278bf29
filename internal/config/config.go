// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/selimb/mortgage-calc/pkg/constants"
	"github.com/selimb/mortgage-calc/pkg/financial"
	"github.com/selimb/mortgage-calc/pkg/simulation"
	"github.com/selimb/mortgage-calc/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. MORTGAGE_CALC_OUTPUT_FORMAT=csv.
const EnvPrefix = "MORTGAGE_CALC"

// Configuration holds all configuration for mortgage-calc.
type Configuration struct {
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format  string `yaml:"format,omitempty"`  // pretty, csv
	Rounded bool   `yaml:"rounded,omitempty"` // print whole units instead of cents
}

// Scenario is one loan and the rates it goes through.
type Scenario struct {
	Name        string
	Active      bool
	LoanAmount  float64
	Term        int    // months
	StartDate   string // month of the first payment, optional
	Compound    string // semi-annual (default) or month
	Extrapolate *bool  // defaults to true
	Decimal     bool   // also compute the fixed-point decimal schedule
	Rates       []Rate
}

// Rate is an annual rate in percent applying for a number of months.
type Rate struct {
	Rate   float64
	Months int
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults make the keys known to viper so the environment can override
	// them even when the file leaves them out.
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	v.SetDefault("output.rounded", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ActiveScenarios returns the scenarios marked active, in file order.
func (conf *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range conf.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// Validate returns an error if any active scenario cannot be computed.
func (conf *Configuration) Validate() error {
	var errs []error
	for _, scenario := range conf.ActiveScenarios() {
		if err := validation.ValidateScenario(scenario.validationConfig()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := validation.ValidateLogLevel(conf.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if err := validation.ValidateLogFormat(conf.Logging.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var scenarios []validation.ScenarioConfig
	for _, scenario := range conf.Scenarios {
		scenarios = append(scenarios, scenario.validationConfig())
	}

	validator := validation.ConfigValidator{Scenarios: scenarios}
	return validator.ValidateAll()
}

func (s Scenario) validationConfig() validation.ScenarioConfig {
	rates := make([]validation.RateConfig, len(s.Rates))
	for i, rate := range s.Rates {
		rates[i] = validation.RateConfig{Rate: rate.Rate, Months: rate.Months}
	}
	return validation.ScenarioConfig{
		Name:       s.Name,
		Active:     s.Active,
		LoanAmount: s.LoanAmount,
		Term:       s.Term,
		StartDate:  s.StartDate,
		Compound:   s.Compound,
		Rates:      rates,
	}
}

// RatePeriods converts the configured rates for the simulation.
func (s Scenario) RatePeriods() []simulation.RateOverPeriod {
	periods := make([]simulation.RateOverPeriod, len(s.Rates))
	for i, rate := range s.Rates {
		periods[i] = simulation.RateOverPeriod{AnnualRatePercent: rate.Rate, Months: rate.Months}
	}
	return periods
}

// CompoundMode parses the configured compounding mode.
func (s Scenario) CompoundMode() (financial.Compound, error) {
	return financial.ParseCompound(s.Compound)
}

// ShouldExtrapolate reports whether a balance left after the last rate period
// is carried to the end of the term.
func (s Scenario) ShouldExtrapolate() bool {
	return s.Extrapolate == nil || *s.Extrapolate
}

// SimulationOptions returns the simulation options for the scenario under
// the compounding mode returned by CompoundMode.
func (s Scenario) SimulationOptions(compound financial.Compound) []simulation.Option {
	return []simulation.Option{
		simulation.WithCompound(compound),
		simulation.WithExtrapolate(s.ShouldExtrapolate()),
	}
}
