// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ukpostcode/postcode/pkg/postcode"
	"github.com/ukpostcode/postcode/pkg/types"
)

// maxLineSize bounds a single input line.
const maxLineSize = 64 * 1024

type (
	// Options configures Check and CheckValues.
	Options struct {
		// Upper upper-cases each candidate before validation.
		Upper bool
		// Logger receives a debug line per rejected candidate. Nil discards.
		Logger *log.Logger
	}

	// Result is the outcome for a single candidate.
	Result struct {
		// Line is the 1-based line (or argument) number.
		Line int
		// Input is the candidate as read, before any upper-casing.
		Input string
		// Valid reports whether the candidate matched the grammar.
		Valid bool
		// Postcode is the candidate that was accepted, upper-cased when
		// Options.Upper is set. Empty when Valid is false.
		Postcode postcode.Postcode
		// Err is *postcode.EmptyPostcodeError or *postcode.InvalidPostcodeError
		// when Valid is false.
		Err error
	}

	// Report collects the results of a batch.
	Report struct {
		Results []Result
	}
)

// Check validates every line of r. A trailing "\r" is stripped so CRLF input
// behaves like LF input; nothing else is trimmed, so a line with stray spaces
// is rejected just as it would be on its own. Blank lines are reported as
// empty input rather than skipped.
func Check(ctx context.Context, r io.Reader, opts Options) (*Report, error) {
	logger := loggerOrDiscard(opts.Logger)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	report := &Report{}
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("check canceled at line %d: %w", line+1, err)
		}
		line++
		report.Results = append(report.Results, check(line, strings.TrimSuffix(scanner.Text(), "\r"), opts.Upper, logger))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input after line %d: %w", line, err)
	}

	logger.Debug("batch checked", "lines", line, "valid", report.Valid(), "invalid", report.Invalid(), "empty", report.Empty())
	return report, nil
}

// CheckValues validates each value as if it were one input line.
func CheckValues(values []string, opts Options) *Report {
	logger := loggerOrDiscard(opts.Logger)

	report := &Report{Results: make([]Result, 0, len(values))}
	for i, v := range values {
		report.Results = append(report.Results, check(i+1, v, opts.Upper, logger))
	}
	return report
}

func check(line int, input string, upper bool, logger *log.Logger) Result {
	candidate := input
	if upper {
		candidate = strings.ToUpper(candidate)
	}

	pc, err := postcode.Parse(candidate)
	if err != nil {
		logger.Debug("rejected", "line", line, "input", input, "err", err)
		return Result{Line: line, Input: input, Err: err}
	}
	return Result{Line: line, Input: input, Valid: true, Postcode: pc}
}

// ExitCode returns ExitUsage for empty input, ExitInvalid for a grammar
// mismatch and ExitOK otherwise.
func (r Result) ExitCode() types.ExitCode {
	switch {
	case r.Valid:
		return types.ExitOK
	case errors.Is(r.Err, postcode.ErrEmptyPostcode):
		return types.ExitUsage
	default:
		return types.ExitInvalid
	}
}

// Valid returns the number of accepted candidates.
func (r *Report) Valid() int {
	return r.count(func(res Result) bool { return res.Valid })
}

// Invalid returns the number of non-empty candidates that were rejected.
func (r *Report) Invalid() int {
	return r.count(func(res Result) bool { return res.ExitCode() == types.ExitInvalid })
}

// Empty returns the number of empty candidates.
func (r *Report) Empty() int {
	return r.count(func(res Result) bool { return res.ExitCode() == types.ExitUsage })
}

// ExitCode returns the most severe exit code over all results. An empty
// report is successful.
func (r *Report) ExitCode() types.ExitCode {
	code := types.ExitOK
	for _, res := range r.Results {
		code = code.Max(res.ExitCode())
	}
	return code
}

func (r *Report) count(match func(Result) bool) int {
	n := 0
	for _, res := range r.Results {
		if match(res) {
			n++
		}
	}
	return n
}

func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}
