// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukpostcode/postcode/internal/config"
	"github.com/ukpostcode/postcode/internal/issue"
	"github.com/ukpostcode/postcode/pkg/postcode"
	"github.com/ukpostcode/postcode/pkg/types"
)

func newDecomposeCommand(app *App) *cobra.Command {
	var upper bool

	cmd := &cobra.Command{
		Use:   "decompose POSTCODE",
		Short: "Split a postcode into area, district, sector and unit",
		Example: `  postcode decompose "EC1A 1BB"
  postcode decompose -o json "W1A 0AX"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := settingsFromContext(ctx)

			candidate := args[0]
			if upper || s.Config.UpperCaseInput {
				candidate = strings.ToUpper(candidate)
			}

			parts, err := postcode.Decompose(postcode.Postcode(candidate))
			if err != nil {
				if errors.Is(err, postcode.ErrEmptyPostcode) {
					return app.fail(ctx, types.ExitUsage, newServiceError(err, issue.EmptyPostcodeId, ""))
				}
				return app.fail(ctx, types.ExitInvalid, newServiceError(err, issue.InvalidPostcodeId, ""))
			}

			if s.Output == config.OutputFormatJSON {
				return writeJSON(app.stdout, parts)
			}

			for _, row := range [][2]string{
				{"area", parts.Area},
				{"district", parts.District},
				{"sector", parts.Sector},
				{"unit", parts.Unit},
			} {
				fmt.Fprintf(app.stdout, "%s %s\n", CmdStyle.Render(fmt.Sprintf("%-9s", row[0]+":")), row[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&upper, "upper", false, "upper-case the postcode before splitting (default from config)")

	return cmd
}
