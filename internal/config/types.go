// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDirLayout is returned when source and output directories collide.
	ErrInvalidDirLayout = errors.New("invalid directory layout")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// Config is the application configuration for a documentation project.
	Config struct {
		// Project is the distribution name on PyPI, used in the rendered
		// "pip install project[extra]" hint.
		Project string `mapstructure:"project"`

		// PackageRoot is the directory requirement sources are resolved
		// against, relative to the parent of SourceDir.
		PackageRoot string `mapstructure:"package_root"`

		// SourceDir holds the Markdown documentation pages.
		SourceDir string `mapstructure:"source_dir"`

		// OutputDir receives the rendered HTML pages.
		OutputDir string `mapstructure:"output_dir"`

		// Strict aborts the build at the first failing directive instead of
		// collecting errors across pages.
		Strict bool `mapstructure:"strict"`

		// UI holds terminal output settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds terminal output settings.
	UIConfig struct {
		Verbose     bool        `mapstructure:"verbose"`
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", string(e.Value))
}

// Unwrap returns the sentinel for errors.Is() matching.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// IsValid reports whether the color scheme is one of the known values.
func (c ColorScheme) IsValid() bool {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true
	}
	return false
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		PackageRoot: ".",
		SourceDir:   "docs",
		OutputDir:   "docs/_build",
		Strict:      false,
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Validate checks constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	if !c.UI.ColorScheme.IsValid() {
		return &InvalidColorSchemeError{Value: c.UI.ColorScheme}
	}
	if c.SourceDir == c.OutputDir {
		return fmt.Errorf("%w: source_dir and output_dir are both %q", ErrInvalidDirLayout, c.SourceDir)
	}
	return nil
}
