// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"extrasdoc/internal/config"
	"extrasdoc/internal/directive"
	"extrasdoc/internal/site"
	"extrasdoc/internal/sources"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	previewScope    string
	previewFile     string
	previewPkgInfo  string
	previewSetupCfg bool
	previewPyproj   bool
	previewFlit     bool

	previewCmd = &cobra.Command{
		Use:   "preview <extra> [requirement...]",
		Short: "Render one extra's admonition in the terminal",
		Long: `Render one extra's admonition in the terminal.

Resolves the requirements of a single extra exactly as a directive on a
page would, then renders the resulting admonition with terminal styling
instead of HTML. The source is picked the same way: exactly one of the
source flags, or inline requirement arguments.

Examples:
  extrasdoc preview dates --setup-cfg
  extrasdoc preview dates --file requirements/dates.txt
  extrasdoc preview dates 'pytz >=2019.1' babel`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], args[1:])
		},
	}
)

func init() {
	previewCmd.Flags().StringVar(&previewScope, "scope", directive.DefaultScope, "scope named in the lead sentence (module, class, ...)")
	previewCmd.Flags().StringVar(&previewFile, "file", "", "read requirements from a text file")
	previewCmd.Flags().StringVar(&previewPkgInfo, "pkginfo", "", "read a JSON metadata file (empty path uses "+sources.DefaultPkgInfoFile+")")
	previewCmd.Flags().Lookup("pkginfo").NoOptDefVal = sources.DefaultPkgInfoFile
	previewCmd.Flags().BoolVar(&previewSetupCfg, "setup-cfg", false, "read [options.extras_require] from setup.cfg")
	previewCmd.Flags().BoolVar(&previewPyproj, "pyproject", false, "read [project.optional-dependencies] from pyproject.toml")
	previewCmd.Flags().BoolVar(&previewFlit, "flit", false, "read [tool.flit.metadata.requires-extra] from pyproject.toml")
}

// previewOptions translates the preview flags into directive source options.
func previewOptions(cmd *cobra.Command) sources.Options {
	opts := sources.Options{}
	if previewFile != "" {
		opts[sources.KindFile] = previewFile
	}
	if cmd.Flags().Changed("pkginfo") {
		opts[sources.KindPkgInfo] = previewPkgInfo
	}
	if previewSetupCfg {
		opts[sources.KindSetupCfg] = ""
	}
	if previewPyproj {
		opts[sources.KindPyproject] = ""
	}
	if previewFlit {
		opts[sources.KindFlit] = ""
	}
	return opts
}

func runPreview(cmd *cobra.Command, extra string, inline []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		// Preview is usable without a project config; fall back to defaults.
		cfg = config.DefaultConfig()
	}

	reqs, err := sources.Resolve(sources.Request{
		PackageRoot: site.ResolveRoot(cfg),
		Extra:       extra,
		Options:     previewOptions(cmd),
		Content:     inline,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorForDisplay(err, verbose))
		renderIssueCard(os.Stderr, err)
		return &ExitError{Code: 1, Err: err}
	}

	if len(reqs) == 0 {
		fmt.Println(WarningStyle.Render(fmt.Sprintf("Extra %q resolved to zero requirements; pages would show no notice.", extra)))
		return nil
	}

	markdown := directive.AdmonitionMarkdown(reqs, cfg.Project, extra, previewScope)

	renderer, err := glamour.NewTermRenderer(glamourStyle(cfg.UI.ColorScheme), glamour.WithWordWrap(100))
	if err != nil {
		return err
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// glamourStyle maps the configured color scheme to a glamour style option.
func glamourStyle(scheme config.ColorScheme) glamour.TermRendererOption {
	switch scheme {
	case config.ColorSchemeDark:
		return glamour.WithStandardStyle("dark")
	case config.ColorSchemeLight:
		return glamour.WithStandardStyle("light")
	default:
		return glamour.WithAutoStyle()
	}
}
