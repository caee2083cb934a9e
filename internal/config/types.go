// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// Element names the numeric type the CLI instantiates Sequence/Matrix with.
type Element string

const (
	// ElementInt selects int elements.
	ElementInt Element = "int"
	// ElementInt64 selects int64 elements (default).
	ElementInt64 Element = "int64"
	// ElementFloat64 selects float64 elements.
	ElementFloat64 Element = "float64"
)

var (
	// ErrInvalidElement is returned when Element is not one of the supported names.
	ErrInvalidElement = errors.New("invalid element type")
	// ErrInvalidFormat is returned when the output verb is not a fmt verb.
	ErrInvalidFormat = errors.New("invalid format config")
	// ErrInvalidLogLevel is returned when the log level cannot be parsed.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrConfigNotFound is returned when an explicit config path does not exist.
	ErrConfigNotFound = errors.New("config file not found")
)

type (
	// Config is the effective CLI configuration.
	Config struct {
		// Element is the numeric element type used for operands.
		Element Element `mapstructure:"element" toml:"element"`
		// Format controls how results are written.
		Format FormatConfig `mapstructure:"format" toml:"format"`
		// Log controls diagnostic output on stderr.
		Log LogConfig `mapstructure:"log" toml:"log"`
	}

	// FormatConfig maps onto sequence.FormatOption values.
	FormatConfig struct {
		Separator string `mapstructure:"separator" toml:"separator"`
		Verb      string `mapstructure:"verb" toml:"verb"`
	}

	// LogConfig configures the charmbracelet/log logger.
	LogConfig struct {
		Level   string `mapstructure:"level" toml:"level"`
		Verbose bool   `mapstructure:"verbose" toml:"verbose"`
	}
)

// String returns the element name.
func (e Element) String() string { return string(e) }

// IsValid reports whether e names a supported element type.
func (e Element) IsValid() bool {
	switch e {
	case ElementInt, ElementInt64, ElementFloat64:
		return true
	default:
		return false
	}
}

// Validate returns ErrInvalidElement wrapped with the offending value.
func (e Element) Validate() error {
	if !e.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s, %s, %s)", ErrInvalidElement, string(e), ElementInt, ElementInt64, ElementFloat64)
	}

	return nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Element: ElementInt64,
		Format: FormatConfig{
			Separator: " ",
			Verb:      "%v",
		},
		Log: LogConfig{
			Level:   "info",
			Verbose: false,
		},
	}
}
