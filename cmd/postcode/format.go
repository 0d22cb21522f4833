// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ukpostcode/postcode/internal/batch"
	"github.com/ukpostcode/postcode/internal/config"
	"github.com/ukpostcode/postcode/internal/issue"
	"github.com/ukpostcode/postcode/pkg/postcode"
	"github.com/ukpostcode/postcode/pkg/types"
)

// formatResultJSON is the JSON form of one format result.
type formatResultJSON struct {
	Index    int    `json:"index"`
	Postcode string `json:"postcode,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newFormatCommand(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "format AREA DISTRICT SECTOR UNIT",
		Short: "Compose a postcode from its parts",
		Long: `Compose a postcode as AREA+DISTRICT, a space, then SECTOR+UNIT,
upper-case it, and check the result against the UK postcode format.

With --file, parts are read from a CUE or JSON document:

  {"postcodes": [{"area": "EC", "district": "1A", "sector": "1", "unit": "BB"}]}

Every part must be a string; a number or a missing part is reported as
an incorrect value type (exit code 2).`,
		Example: `  postcode format EC 1A 1 BB
  postcode format --file parts.json -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if len(args) > 0 {
					return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("part arguments cannot be combined with --file")}
				}
				return runFormatFile(cmd.Context(), app, file)
			}
			if len(args) != 4 {
				return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("format needs exactly 4 parts (AREA DISTRICT SECTOR UNIT), got %d", len(args))}
			}
			return runFormat(cmd.Context(), app, postcode.Parts{Area: args[0], District: args[1], Sector: args[2], Unit: args[3]})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read parts from a CUE or JSON document ('-' for stdin)")

	return cmd
}

func runFormat(ctx context.Context, app *App, parts postcode.Parts) error {
	pc, err := parts.Format()
	if err != nil {
		return app.fail(ctx, types.ExitInvalid, newServiceError(err, issue.InvalidValuesId, ""))
	}

	if settingsFromContext(ctx).Output == config.OutputFormatJSON {
		return writeJSON(app.stdout, formatResultJSON{Postcode: pc.String()})
	}
	fmt.Fprintln(app.stdout, pc)
	return nil
}

func runFormatFile(ctx context.Context, app *App, path string) error {
	in, err := app.openInput(path)
	if err != nil {
		return app.fail(ctx, types.ExitUsage, inputReadError(path, err))
	}
	data, err := io.ReadAll(in)
	in.Close()
	if err != nil {
		return app.fail(ctx, types.ExitUsage, inputReadError(path, err))
	}

	records, err := batch.LoadPartsDocument(data, path)
	if err != nil {
		return app.fail(ctx, types.ExitUsage, newServiceError(err, issue.PartsDocumentInvalidId, ""))
	}

	report, err := batch.FormatAll(ctx, records)
	if err != nil {
		return err
	}

	if err := writeFormatReport(app.stdout, report, settingsFromContext(ctx)); err != nil {
		return err
	}

	app.recordExitCode(report.ExitCode())
	return nil
}

func writeFormatReport(w io.Writer, report *batch.FormatReport, s *settings) error {
	if s.Output == config.OutputFormatJSON {
		out := make([]formatResultJSON, 0, len(report.Results))
		for _, res := range report.Results {
			item := formatResultJSON{Index: res.Index, Postcode: res.Postcode.String()}
			if res.Err != nil {
				item.Error = res.Err.Error()
			}
			out = append(out, item)
		}
		return writeJSON(w, out)
	}

	for _, res := range report.Results {
		if res.Err == nil {
			fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("✓"), res.Postcode)
			continue
		}

		fmt.Fprintf(w, "%s %s %s\n", ErrorStyle.Render("✗"), SubtitleStyle.Render(fmt.Sprintf("#%d", res.Index)), res.Err)
	}
	return nil
}
