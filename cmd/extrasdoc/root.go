// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"extrasdoc/internal/config"
	"extrasdoc/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   config.AppName,
		Short: "Documentation builder with extras-require directives",
		Long: TitleStyle.Render("extrasdoc") + SubtitleStyle.Render(" - Documentation builder with extras-require directives") + `

extrasdoc renders a tree of Markdown documentation pages to HTML and
provides an 'extras-require' block that summarizes the optional
requirements of a package feature ("extra") inline in the page.

Requirements come from exactly one source per directive: a requirements
file, a JSON metadata file, setup.cfg, pyproject.toml (PEP 621 or flit),
or the directive body itself.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create an extrasdoc.cue in your project directory
  2. Write pages under the source_dir with extras-require blocks
  3. Render them with: extrasdoc build

` + SubtitleStyle.Render("Examples:") + `
  extrasdoc build           Render all pages to the output directory
  extrasdoc check           Resolve every directive without writing output
  extrasdoc preview dates   Show one extra's admonition in the terminal
  extrasdoc config show     Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./extrasdoc.cue)")

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig points the config loader at the --config path, if given.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
}

// loadConfig loads the configuration and applies the verbose flag over the
// file's ui settings.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	if cfg.UI.Verbose {
		verbose = true
	}
	return cfg, path, nil
}

// newLogger returns the logger all passes report through.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
