// Package constants provides shared constants for the mortgage-calc application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyDigits is the number of fractional digits kept on emitted amounts
	CurrencyDigits = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// SemiAnnualPeriodsPerYear is the number of compounding periods per year
	// for semi-annual compounding
	SemiAnnualPeriodsPerYear = 2
)

// Compounding mode names as they appear in configuration files.
const (
	// CompoundSemiAnnual compounds twice a year, as Canadian mortgages do by law
	CompoundSemiAnnual = "semi-annual"

	// CompoundMonthly compounds every month
	CompoundMonthly = "month"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// HalfCent is the largest remainder still treated as a paid off balance
	HalfCent = 0.005
)
