// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"github.com/ukpostcode/postcode/internal/issue"
	"github.com/ukpostcode/postcode/pkg/types"
)

func TestIssue_List(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "issue")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	for _, i := range issue.Values() {
		if !strings.Contains(res.stdout, i.Name()) {
			t.Errorf("issue list should contain %q, got:\n%s", i.Name(), res.stdout)
		}
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "issue", "invalid-values")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "do not make a postcode") {
		t.Errorf("rendered issue should contain its heading, got:\n%s", res.stdout)
	}
}

func TestIssue_Unknown(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "issue", "no-such-issue")
	if res.exitCode() != types.ExitUsage {
		t.Errorf("exit code = %v, want %v", res.exitCode(), types.ExitUsage)
	}
}
