// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukpostcode/postcode/internal/config"
	"github.com/ukpostcode/postcode/internal/issue"
	"github.com/ukpostcode/postcode/pkg/types"
)

// newConfigCommand creates the `postcode config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage postcode configuration",
		Long: `Manage postcode configuration.

Configuration is stored in:
  - Linux: ~/.config/postcode/config.cue
  - macOS: ~/Library/Application Support/postcode/config.cue
  - Windows: %APPDATA%\postcode\config.cue

POSTCODE_* environment variables override file values, for example
POSTCODE_OUTPUT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	var dumpFormat string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE or TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigStrict(cmd.Context(), app)
			if err != nil {
				return err
			}

			switch dumpFormat {
			case "cue":
				fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			case "toml":
				out, err := config.GenerateTOML(cfg)
				if err != nil {
					return err
				}
				fmt.Fprint(app.stdout, out)
			default:
				return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("unknown dump format %q (valid: cue, toml)", dumpFormat)}
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "cue", "dump format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

// loadConfigStrict loads configuration and fails on errors, unlike the root
// pre-run hook which falls back to defaults.
func loadConfigStrict(ctx context.Context, app *App) (*config.Config, error) {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: app.flags.configPath})
	if err != nil {
		return nil, app.fail(ctx, types.ExitUsage, newServiceError(err, issue.ConfigLoadFailedId, ""))
	}
	return cfg, nil
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := loadConfigStrict(ctx, app)
	if err != nil {
		return err
	}

	if settingsFromContext(ctx).Output == config.OutputFormatJSON {
		return writeJSON(app.stdout, cfg)
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, err := config.Resolve(config.LoadOptions{ConfigFilePath: app.flags.configPath})
	if err == nil && path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("output_format"), valueStyle.Render(cfg.OutputFormat.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("upper_case_input"), valueStyle.Render(fmt.Sprintf("%v", cfg.UpperCaseInput)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App) error {
	path, err := config.CreateDefaultConfig("")
	if err != nil {
		return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("failed to create config: %w", err)}
	}

	fmt.Fprintf(app.stdout, "%s Configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", config.FilePath(cfgDir))

	if path, err := config.Resolve(config.LoadOptions{ConfigFilePath: app.flags.configPath}); err == nil && path != "" {
		fmt.Fprintf(app.stdout, "Loaded from: %s\n", path)
	}

	return nil
}
