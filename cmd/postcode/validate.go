// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ukpostcode/postcode/internal/batch"
	"github.com/ukpostcode/postcode/internal/config"
	"github.com/ukpostcode/postcode/internal/issue"
	"github.com/ukpostcode/postcode/pkg/postcode"
	"github.com/ukpostcode/postcode/pkg/types"
)

type (
	validateOptions struct {
		file  string
		upper bool
	}

	// validateResultJSON is the JSON form of one validate result.
	validateResultJSON struct {
		Line     int    `json:"line"`
		Input    string `json:"input"`
		Valid    bool   `json:"valid"`
		Postcode string `json:"postcode,omitempty"`
		Error    string `json:"error,omitempty"`
	}
)

func newValidateCommand(app *App) *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate [POSTCODE...]",
		Short: "Check postcodes against the UK postcode format",
		Long: `Check each postcode against the UK postcode format.

Postcodes are taken from the arguments, or one per line from --file
('-' reads standard input). Blank lines count as empty input, and a file
with no lines at all is reported as empty input (exit code 2).

Accepted postcodes are printed as checked: with --upper (or
upper_case_input in the configuration) that is the upper-cased form.`,
		Example: `  postcode validate "EC1A 1BB" "M1 1AE"
  postcode validate --upper "ec1a 1bb"
  cat postcodes.txt | postcode validate --file - -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read postcodes from a file, one per line ('-' for stdin)")
	cmd.Flags().BoolVar(&opts.upper, "upper", false, "upper-case each postcode before checking (default from config)")

	return cmd
}

func runValidate(ctx context.Context, app *App, opts validateOptions, args []string) error {
	s := settingsFromContext(ctx)
	checkOpts := batch.Options{
		Upper:  opts.upper || s.Config.UpperCaseInput,
		Logger: app.Logger,
	}

	var report *batch.Report
	switch {
	case opts.file != "":
		if len(args) > 0 {
			return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("postcode arguments cannot be combined with --file")}
		}
		r, err := checkFile(ctx, app, opts.file, checkOpts)
		if err != nil {
			return err
		}
		if len(r.Results) == 0 {
			return app.fail(ctx, types.ExitUsage, newServiceError(
				fmt.Errorf("no postcodes read from %s: %w", opts.file, &postcode.EmptyPostcodeError{}),
				issue.EmptyPostcodeId, ""))
		}
		report = r
	case len(args) == 0:
		return app.fail(ctx, types.ExitUsage, newServiceError(&postcode.EmptyPostcodeError{}, issue.EmptyPostcodeId, ""))
	default:
		report = batch.CheckValues(args, checkOpts)
	}

	if err := writeValidateReport(app.stdout, report, s); err != nil {
		return err
	}

	app.recordExitCode(report.ExitCode())
	return nil
}

func checkFile(ctx context.Context, app *App, path string, opts batch.Options) (*batch.Report, error) {
	in, err := app.openInput(path)
	if err != nil {
		return nil, app.fail(ctx, types.ExitUsage, inputReadError(path, err))
	}
	defer in.Close()

	report, err := batch.Check(ctx, in, opts)
	if err != nil {
		return nil, app.fail(ctx, types.ExitUsage, inputReadError(path, err))
	}
	return report, nil
}

func inputReadError(path string, err error) *ServiceError {
	ae := issue.WrapWithContext(err, "read postcodes", path)
	ae.Suggestions = []string{
		"Check that the file exists and is readable",
		"Use '-' to read from standard input",
	}
	return newServiceError(ae, issue.InputReadFailedId, "")
}

func writeValidateReport(w io.Writer, report *batch.Report, s *settings) error {
	if s.Output == config.OutputFormatJSON {
		out := make([]validateResultJSON, 0, len(report.Results))
		for _, res := range report.Results {
			item := validateResultJSON{Line: res.Line, Input: res.Input, Valid: res.Valid, Postcode: res.Postcode.String()}
			if res.Err != nil {
				item.Error = res.Err.Error()
			}
			out = append(out, item)
		}
		return writeJSON(w, out)
	}

	for _, res := range report.Results {
		switch res.ExitCode() {
		case types.ExitOK:
			fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("✓"), res.Postcode)
		case types.ExitUsage:
			fmt.Fprintf(w, "%s %s\n", WarningStyle.Render("!"), SubtitleStyle.Render(fmt.Sprintf("(empty, line %d)", res.Line)))
		default:
			fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("✗"), res.Input)
		}
		if s.Verbose && res.Err != nil {
			fmt.Fprintf(w, "  %s\n", VerboseStyle.Render(res.Err.Error()))
		}
	}

	if len(report.Results) > 1 {
		fmt.Fprintf(w, "\n%s\n", SubtitleStyle.Render(fmt.Sprintf("%d checked: %d valid, %d invalid, %d empty",
			len(report.Results), report.Valid(), report.Invalid(), report.Empty())))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
