// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukpostcode/postcode/internal/issue"
	"github.com/ukpostcode/postcode/pkg/types"
)

func newIssueCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "issue [NAME]",
		Short: "Explain an error and how to fix it",
		Long: `Explain an error and how to fix it.

Without a name, lists every known issue.`,
		Example: `  postcode issue
  postcode issue invalid-postcode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, i := range issue.Values() {
					fmt.Fprintf(app.stdout, "%s\n", CmdStyle.Render(i.Name()))
				}
				return nil
			}

			entry := issue.Lookup(args[0])
			if entry == nil {
				return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("unknown issue %q (run 'postcode issue' to list them)", args[0])}
			}

			rendered, err := entry.Render(settingsFromContext(cmd.Context()).Config.UI.ColorScheme.String())
			if err != nil {
				return fmt.Errorf("render issue %s: %w", entry.Name(), err)
			}
			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}
}
