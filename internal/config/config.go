// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/yearfrac/pkg/constants"
	"github.com/iwvelando/yearfrac/pkg/datetime"
	"github.com/iwvelando/yearfrac/pkg/daycount"
	"github.com/iwvelando/yearfrac/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for yearfrac.
type Configuration struct {
	Defaults     Defaults      `yaml:"defaults,omitempty"`
	Calculations []Calculation `yaml:"calculations"`
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format    string `yaml:"format,omitempty"` // pretty, csv, json
	Precision int    `yaml:"precision,omitempty"`
}

// Defaults apply to every calculation.
type Defaults struct {
	Convention string `yaml:"convention,omitempty"`
	Signed     bool   `yaml:"signed,omitempty"`
}

// Calculation is one named year fraction to evaluate.
type Calculation struct {
	Name       string `yaml:"name"`
	StartDate  string `yaml:"startDate"`
	EndDate    string `yaml:"endDate"`
	Convention string `yaml:"convention,omitempty"` // name or basis code
	Signed     bool   `yaml:"signed,omitempty"`
	ISDA       bool   `yaml:"isda,omitempty"` // per-year split instead of the act/act basis

	Start time.Time           `mapstructure:"-" yaml:"-"`
	End   time.Time           `mapstructure:"-" yaml:"-"`
	Basis daycount.Convention `mapstructure:"-" yaml:"-"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("defaults.convention", constants.DefaultConvention)
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.precision", constants.DefaultPrecision)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromBytes loads a YAML-formatted configuration held in
// memory, such as an uploaded batch.
func LoadConfigurationFromBytes(data []byte) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ParseCalculations parses the dates and convention of every calculation,
// applying the configured defaults, and stores them back on the Calculation.
func (conf *Configuration) ParseCalculations() error {
	for i := range conf.Calculations {
		if err := conf.Calculations[i].Parse(conf.Defaults); err != nil {
			return err
		}
	}
	return nil
}

// Parse fills Start, End and Basis from the string fields.
func (calc *Calculation) Parse(defaults Defaults) error {
	var err error
	if calc.Start, err = datetime.ParseDate(calc.StartDate); err != nil {
		return fmt.Errorf("calculation %q start date: %w", calc.Name, err)
	}
	if calc.End, err = datetime.ParseDate(calc.EndDate); err != nil {
		return fmt.Errorf("calculation %q end date: %w", calc.Name, err)
	}

	name := calc.Convention
	if strings.TrimSpace(name) == "" {
		name = defaults.Convention
	}
	if strings.TrimSpace(name) == "" {
		name = constants.DefaultConvention
	}
	if calc.Basis, err = daycount.Parse(name); err != nil {
		return fmt.Errorf("calculation %q: %w", calc.Name, err)
	}
	if calc.ISDA && calc.Basis != daycount.ActAct {
		return fmt.Errorf("calculation %q: isda applies only to %s, got %s", calc.Name, daycount.ActAct, calc.Basis)
	}

	calc.Signed = calc.Signed || defaults.Signed
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	calculations := make([]validation.CalculationConfig, 0, len(conf.Calculations))
	for _, calc := range conf.Calculations {
		calculations = append(calculations, validation.CalculationConfig{
			Name:      calc.Name,
			StartDate: calc.StartDate,
			EndDate:   calc.EndDate,
			Signed:    calc.Signed || conf.Defaults.Signed,
		})
	}

	warnings := validation.ValidateCalculations(calculations)
	if len(conf.Calculations) == 0 {
		warnings = append(warnings, "Configuration has no calculations")
	}
	warnings = append(warnings, conf.validateOutput()...)
	return warnings
}

func (conf *Configuration) validateOutput() []string {
	var warnings []string
	if conf.Output.Format != "" {
		if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
			warnings = append(warnings, "Output: "+err.Error())
		}
	}
	if err := validation.ValidatePrecision(conf.Output.Precision); err != nil {
		warnings = append(warnings, "Output: "+err.Error())
	}
	return warnings
}
