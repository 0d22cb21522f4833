// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/ukpostcode/postcode/internal/cueutil"
	"github.com/ukpostcode/postcode/pkg/postcode"
	"github.com/ukpostcode/postcode/pkg/types"
)

//go:embed parts_schema.cue
var partsSchema string

type (
	// PartsRecord is one entry of a parts document. Values are untyped until
	// FormatAll checks them.
	PartsRecord struct {
		Area     any `json:"area"`
		District any `json:"district"`
		Sector   any `json:"sector"`
		Unit     any `json:"unit"`
	}

	partsDocument struct {
		Postcodes []PartsRecord `json:"postcodes"`
	}

	// FormatResult is the outcome of formatting one record.
	FormatResult struct {
		// Index is the 0-based position in the document.
		Index int
		// Record is the record as decoded.
		Record PartsRecord
		// Postcode is the composed postcode when Err is nil.
		Postcode postcode.Postcode
		// Err is *postcode.IncorrectValueTypeError or *postcode.InvalidValuesError.
		Err error
	}

	// FormatReport collects the results of FormatAll.
	FormatReport struct {
		Results []FormatResult
	}
)

// LoadPartsDocument decodes a CUE or JSON document of the form
//
//	postcodes: [{area: "EC", district: "1A", sector: "1", unit: "BB"}]
//
// Unknown fields are rejected; part values of any type are accepted here.
func LoadPartsDocument(data []byte, filename string) ([]PartsRecord, error) {
	result, err := cueutil.ParseAndDecodeString[partsDocument](
		partsSchema, data, "#PartsDocument",
		cueutil.WithFilename(filename),
	)
	if err != nil {
		return nil, err
	}
	return result.Value.Postcodes, nil
}

// FormatAll formats every record with postcode.FormatValues. The context is
// checked between records.
func FormatAll(ctx context.Context, records []PartsRecord) (*FormatReport, error) {
	report := &FormatReport{Results: make([]FormatResult, 0, len(records))}
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("format canceled at record %d: %w", i, err)
		}
		pc, err := postcode.FormatValues(rec.Area, rec.District, rec.Sector, rec.Unit)
		report.Results = append(report.Results, FormatResult{Index: i, Record: rec, Postcode: pc, Err: err})
	}
	return report, nil
}

// ExitCode returns ExitUsage for a part of the wrong type, ExitInvalid for
// parts that do not compose a postcode and ExitOK otherwise.
func (r FormatResult) ExitCode() types.ExitCode {
	switch {
	case r.Err == nil:
		return types.ExitOK
	case errors.Is(r.Err, postcode.ErrIncorrectValueType):
		return types.ExitUsage
	default:
		return types.ExitInvalid
	}
}

// ExitCode returns the most severe exit code over all results.
func (r *FormatReport) ExitCode() types.ExitCode {
	code := types.ExitOK
	for _, res := range r.Results {
		code = code.Max(res.ExitCode())
	}
	return code
}
