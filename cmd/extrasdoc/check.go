// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"extrasdoc/internal/issue"
	"extrasdoc/internal/site"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve every directive without writing output",
	Long: `Resolve every directive without writing output.

Visits all pages regardless of strict mode and reports every failing
extras-require directive at once. Useful in CI and before a build.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck()
	},
}

func runCheck() error {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return &ExitError{Code: 2, Err: err}
	}

	logger := newLogger()
	if cfgPath != "" {
		logger.Debug("loaded configuration", "path", cfgPath)
	}

	result, err := site.New(cfg, logger).Check()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(fmt.Sprintf("%d problem(s) found:", len(result.Errors))))
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, formatErrorForDisplay(e, verbose))
		}
		renderIssueCards(os.Stderr, result.Errors)
		return &ExitError{Code: 1, Err: result.Errors[0]}
	}

	fmt.Println(SuccessStyle.Render(fmt.Sprintf("✓ %d pages checked, %d directives resolved",
		result.Pages, len(result.Occurrences))))
	return nil
}
