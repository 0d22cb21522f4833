// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ukpostcode/postcode/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the full command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "postcode",
		Short: "Validate and format UK postcodes",
		Long: TitleStyle.Render("postcode") + SubtitleStyle.Render(" - Validate and format UK postcodes") + `

postcode checks candidates against the UK postcode format (an outward code,
one space, an inward code) and composes postcodes from their parts.
Letters may be in any case; stray whitespace is always rejected.

` + SubtitleStyle.Render("Exit codes:") + `
  0  every input is a valid postcode
  1  at least one input is not a valid postcode
  2  empty input, a part of the wrong type, or unreadable input

` + SubtitleStyle.Render("Examples:") + `
  postcode validate "EC1A 1BB"         Check a single postcode
  postcode validate --file list.txt    Check one postcode per line
  postcode format EC 1A 1 BB           Compose "EC1A 1BB" from its parts
  postcode decompose "W1A 0AX"         Split a postcode into its parts
  postcode issue invalid-postcode      Explain the postcode format`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.resolveSettings(cmd.Context())
			if err != nil {
				return err
			}
			cmd.SetContext(contextWithSettings(cmd.Context(), s))
			return nil
		},
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetIn(app.stdin)

	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is $HOME/.config/postcode/config.cue)")
	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&app.flags.output, "output", "o", "", "output format: text or json (default from config)")

	rootCmd.AddCommand(
		newValidateCommand(app),
		newFormatCommand(app),
		newDecomposeCommand(app),
		newConfigCommand(app),
		newIssueCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App and runs the command tree. This is called by
// main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(types.ExitUsage))
	}

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitUsage))
	}

	os.Exit(int(app.ExitCode()))
}
