// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukpostcode/postcode/internal/issue"
	"github.com/ukpostcode/postcode/internal/testutil"
	"github.com/ukpostcode/postcode/pkg/postcode"
	"github.com/ukpostcode/postcode/pkg/types"
)

func TestFormat_Args(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     string
		wantCode types.ExitCode
	}{
		{"composes postcode", []string{"EC", "1A", "1", "BB"}, "EC1A 1BB", types.ExitOK},
		{"upper-cases parts", []string{"ec", "1a", "1", "bb"}, "EC1A 1BB", types.ExitOK},
		{"girobank", []string{"G", "IR", "0", "AA"}, "GIR 0AA", types.ExitOK},
		{"unit too long", []string{"EC", "1A", "1", "BB2"}, "", types.ExitInvalid},
		{"empty sector", []string{"W", "1A", "", "AX"}, "", types.ExitInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, nil, "", append([]string{"format"}, tt.args...)...)
			if got := res.exitCode(); got != tt.wantCode {
				t.Fatalf("exit code = %v, want %v (err: %v)", got, tt.wantCode, res.err)
			}
			if tt.wantCode == types.ExitOK {
				if strings.TrimSpace(res.stdout) != tt.want {
					t.Errorf("stdout = %q, want %q", res.stdout, tt.want)
				}
				return
			}

			if !errors.Is(res.err, postcode.ErrInvalidValues) {
				t.Errorf("error should wrap ErrInvalidValues, got %v", res.err)
			}
			var svcErr *ServiceError
			if !errors.As(res.err, &svcErr) || svcErr.IssueID != issue.InvalidValuesId {
				t.Errorf("expected a ServiceError for InvalidValuesId, got %v", res.err)
			}
			if res.stdout != "" {
				t.Errorf("no postcode should be printed on failure, got %q", res.stdout)
			}
		})
	}
}

func TestFormat_WrongArgCount(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "format", "EC", "1A", "1")
	if res.exitCode() != types.ExitUsage {
		t.Errorf("exit code = %v, want %v", res.exitCode(), types.ExitUsage)
	}
}

func TestFormat_JSON(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "format", "-o", "json", "M", "1", "1", "AE")
	var got formatResultJSON
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if got.Postcode != "M1 1AE" {
		t.Errorf("postcode = %q, want M1 1AE", got.Postcode)
	}
}

func TestFormat_File(t *testing.T) {
	t.Parallel()

	path := testutil.MustWriteFile(t, filepath.Join(t.TempDir(), "parts.json"), `{
	"postcodes": [
		{"area": "EC", "district": "1A", "sector": "1", "unit": "BB"},
		{"area": "EC", "district": "1A", "sector": 1, "unit": "BB"},
		{"area": "W", "district": "1A", "sector": "", "unit": "AX"}
	]
}`)

	res := runCLI(t, nil, "", "format", "--file", path)
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.exitCode() != types.ExitUsage {
		t.Errorf("exit code = %v, want %v (wrong type outranks invalid parts)", res.exitCode(), types.ExitUsage)
	}

	for _, want := range []string{"EC1A 1BB", "#1", "must be a string", "#2", "invalid postcode parts"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout should contain %q, got:\n%s", want, res.stdout)
		}
	}
}

func TestFormat_FileFromStdinJSON(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, `postcodes: [{area: "DN", district: "55", sector: "1", unit: "PT"}]`,
		"format", "--file", "-", "-o", "json")
	if res.exitCode() != types.ExitOK {
		t.Fatalf("exit code = %v, want %v (err: %v)", res.exitCode(), types.ExitOK, res.err)
	}

	var got []formatResultJSON
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if len(got) != 1 || got[0].Postcode != "DN55 1PT" {
		t.Errorf("got %+v, want one DN55 1PT result", got)
	}
}

func TestFormat_InvalidDocument(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, `postcodes: [{area: "EC", postcode: "EC1A 1BB"}]`, "format", "--file", "-")
	if res.exitCode() != types.ExitUsage {
		t.Errorf("exit code = %v, want %v", res.exitCode(), types.ExitUsage)
	}
	var svcErr *ServiceError
	if !errors.As(res.err, &svcErr) || svcErr.IssueID != issue.PartsDocumentInvalidId {
		t.Errorf("expected a ServiceError for PartsDocumentInvalidId, got %v", res.err)
	}
}
