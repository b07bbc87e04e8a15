// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"extrasdoc/internal/issue"
	"extrasdoc/internal/site"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render all documentation pages to HTML",
	Long: `Render all documentation pages to HTML.

Every Markdown page under the source directory is converted to HTML in
the output directory. extras-require directives are resolved along the
way; a page with a failing directive produces no output.

In strict mode (strict: true in extrasdoc.cue) the first failure aborts
the build. Otherwise failing pages are skipped and reported together.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild()
	},
}

func runBuild() error {
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

	result, err := site.New(cfg, logger).Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Build failed:"))
		fmt.Fprintln(os.Stderr, formatErrorForDisplay(err, verbose))
		renderIssueCard(os.Stderr, err)
		return &ExitError{Code: 1, Err: err}
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(fmt.Sprintf("%d page(s) failed:", len(result.Errors))))
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, formatErrorForDisplay(e, verbose))
		}
		renderIssueCards(os.Stderr, result.Errors)
		fmt.Println(WarningStyle.Render(fmt.Sprintf("Rendered %d of %d pages to %s", result.Pages-len(result.Errors), result.Pages, cfg.OutputDir)))
		return &ExitError{Code: 1, Err: result.Errors[0]}
	}

	fmt.Println(SuccessStyle.Render(fmt.Sprintf("✓ Rendered %d pages to %s (%d extras-require directives)",
		result.Pages, cfg.OutputDir, len(result.Occurrences))))
	return nil
}
