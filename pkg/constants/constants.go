// Package constants provides shared constants for the yearfrac application.
package constants

// DateLayout is the format expected in config files, CLI flags and API
// requests, and is also the output date format.
const DateLayout = "2006-01-02"

// Day-count constants
const (
	// DaysPer360Year is the denominator of the 30/360 and Actual/360 conventions
	DaysPer360Year = 360

	// DaysPerMonth360 is the fixed month length of the 30/360 conventions
	DaysPerMonth360 = 30

	// DaysPerYear is the length of a common year and the Actual/365 denominator
	DaysPerYear = 365

	// DaysPerLeapYear is the length of a leap year
	DaysPerLeapYear = 366

	// DefaultConvention is the convention used when a calculation names none
	DefaultConvention = "act/act"

	// YearFractionTolerance is the agreement required with spreadsheet YEARFRAC
	YearFractionTolerance = 1e-9

	// DefaultPrecision is the number of decimals printed for a year fraction
	DefaultPrecision = 11
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "YEARFRAC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML batches (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
