// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"extrasdoc/internal/config"
	"extrasdoc/internal/issue"

	"github.com/spf13/cobra"
)

// configCmd is the `extrasdoc config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage extrasdoc configuration",
	Long: `Manage extrasdoc configuration.

Configuration lives in an ` + config.ConfigFileName + ` file in the project
directory (or the path given with --config). Missing file means defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})
}

func showConfig() error {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()
	if cfgPath != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", keyStyle.Render("project"), valueStyle.Render(cfg.Project))
	fmt.Printf("%s: %s\n", keyStyle.Render("package_root"), valueStyle.Render(cfg.PackageRoot))
	fmt.Printf("%s: %s\n", keyStyle.Render("source_dir"), valueStyle.Render(cfg.SourceDir))
	fmt.Printf("%s: %s\n", keyStyle.Render("output_dir"), valueStyle.Render(cfg.OutputDir))
	fmt.Printf("%s: %s\n", keyStyle.Render("strict"), valueStyle.Render(fmt.Sprintf("%v", cfg.Strict)))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	return nil
}

func showConfigPath() error {
	_, cfgPath, err := config.Load()
	if err != nil {
		return err
	}
	if cfgPath == "" {
		fmt.Println(SubtitleStyle.Render("(no config file, using defaults)"))
		return nil
	}
	fmt.Println(cfgPath)
	return nil
}

// initConfigFile writes a default extrasdoc.cue in the current directory.
// Refuses to overwrite an existing file.
func initConfigFile() error {
	path := config.ConfigFileName
	if cfgFile != "" {
		path = cfgFile
	}
	if _, err := os.Stat(path); err == nil {
		return issue.NewErrorContext().
			WithOperation("create configuration file").
			WithResource(path).
			WithSuggestion("Remove the existing file first, or edit it in place").
			Wrap(fmt.Errorf("file already exists")).
			BuildError()
	}

	content := config.GenerateCUE(config.DefaultConfig())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return issue.WrapWithContext(err, "write configuration file", path)
	}
	fmt.Println(SuccessStyle.Render("✓ Created " + path))
	return nil
}
