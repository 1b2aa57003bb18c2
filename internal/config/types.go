// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/biggaero/converter/internal/converter"
	"github.com/biggaero/converter/internal/terminal"
)

const (
	// ColorSchemeAuto detects the terminal background automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"

	// MinBinaryWidth and MaxBinaryWidth bound converter.binary_width.
	MinBinaryWidth = 1
	MaxBinaryWidth = 64
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidBinaryWidth is returned when converter.binary_width is out of range.
	ErrInvalidBinaryWidth = errors.New("invalid binary width")
	// ErrInvalidConfig wraps every validation failure of a Config.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidBinaryWidthError is returned when a binary width is outside
	// [MinBinaryWidth, MaxBinaryWidth].
	InvalidBinaryWidthError struct {
		Value int
	}

	// Config is the root configuration structure.
	Config struct {
		// UI configures the interactive shell and output styling.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
		// Converter configures conversion reports.
		Converter ConverterConfig `json:"converter" mapstructure:"converter" toml:"converter"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme (auto, dark, light).
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
		// Banner shows the banner when the shell starts.
		Banner bool `json:"banner" mapstructure:"banner" toml:"banner"`
		// ClearMode selects how the screen is cleared (auto, ansi, command, none).
		ClearMode terminal.Mode `json:"clear_mode" mapstructure:"clear_mode" toml:"clear_mode"`
	}

	// ConverterConfig configures conversion reports.
	ConverterConfig struct {
		// BinaryWidth is the width the padded binary value is zero-filled to.
		BinaryWidth int `json:"binary_width" mapstructure:"binary_width" toml:"binary_width"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidBinaryWidthError) Error() string {
	return fmt.Sprintf("invalid binary width %d (must be %d-%d)", e.Value, MinBinaryWidth, MaxBinaryWidth)
}

// Unwrap returns ErrInvalidBinaryWidth.
func (e *InvalidBinaryWidthError) Unwrap() error { return ErrInvalidBinaryWidth }

// Validate returns an error if the ColorScheme is not one of the known schemes.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate checks every field and returns all problems joined, wrapped in
// ErrInvalidConfig. Values loaded from CUE files are already constrained by
// the schema; this also covers environment overrides and hand-built configs.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ClearMode.Validate(); err != nil {
		errs = append(errs, err)
	}
	if w := c.Converter.BinaryWidth; w < MinBinaryWidth || w > MaxBinaryWidth {
		errs = append(errs, &InvalidBinaryWidthError{Value: w})
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
			Banner:      true,
			ClearMode:   terminal.ModeAuto,
		},
		Converter: ConverterConfig{
			BinaryWidth: converter.DefaultBinaryWidth,
		},
	}
}
