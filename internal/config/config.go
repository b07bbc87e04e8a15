// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"

	"extrasdoc/internal/issue"
	"extrasdoc/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "extrasdoc"
	// ConfigFileName is the name of the config file in the project directory.
	ConfigFileName = "extrasdoc.cue"
)

//go:embed config_schema.cue
var configSchema string

// Load reads the configuration. Resolution order: the path set with
// SetConfigFilePathOverride (--config flag), then ConfigFileName in the
// current directory, then defaults. The returned path is empty when the
// defaults were used.
func Load() (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("project", defaults.Project)
	v.SetDefault("package_root", defaults.PackageRoot)
	v.SetDefault("source_dir", defaults.SourceDir)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)

	resolvedPath := ""

	switch {
	case configFileOverride != "":
		if !fileExists(configFileOverride) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFileOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'extrasdoc config init' to create a default configuration").
				Wrap(fmt.Errorf("config file not found: %s", configFileOverride)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, configFileOverride); err != nil {
			return nil, "", wrapLoadError(err, configFileOverride)
		}
		resolvedPath = configFileOverride

	case fileExists(ConfigFileName):
		if err := loadCUEIntoViper(v, ConfigFileName); err != nil {
			return nil, "", wrapLoadError(err, ConfigFileName)
		}
		resolvedPath = ConfigFileName
	}
	// No config file found: defaults apply, not an error.

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check ui.color_scheme is one of auto, dark, light").
			WithSuggestion("Check that source_dir and output_dir differ").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

func wrapLoadError(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("See 'extrasdoc config --help' for configuration options").
		Wrap(err).
		BuildError()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into Viper.
//
// Note: this uses a manual CUE flow instead of decoding straight to Config
// because the file's values must merge over Viper defaults, and because
// fields are optional the validation runs with Concrete(false).
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	return v.MergeConfigMap(configMap)
}

// GenerateCUE renders a configuration back as CUE source, for
// 'extrasdoc config dump' and 'extrasdoc config init'.
func GenerateCUE(cfg *Config) string {
	return fmt.Sprintf(`project: %q
package_root: %q
source_dir: %q
output_dir: %q
strict: %t

ui: {
	verbose: %t
	color_scheme: %q
}
`, cfg.Project, cfg.PackageRoot, cfg.SourceDir, cfg.OutputDir, cfg.Strict,
		cfg.UI.Verbose, string(cfg.UI.ColorScheme))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
