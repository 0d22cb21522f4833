// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ukpostcode/postcode/internal/config"
	"github.com/ukpostcode/postcode/pkg/types"
)

type (
	// stubConfigProvider returns a fixed configuration or error.
	stubConfigProvider struct {
		cfg *config.Config
		err error
	}

	cliResult struct {
		stdout string
		stderr string
		app    *App
		err    error
	}
)

func (p stubConfigProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.cfg == nil {
		return config.DefaultConfig(), nil
	}
	clone := *p.cfg
	return &clone, nil
}

// runCLI executes the full command tree against buffers.
func runCLI(t *testing.T, provider ConfigProvider, stdin string, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	if provider == nil {
		provider = stubConfigProvider{}
	}
	app, err := NewApp(Dependencies{
		Config: provider,
		Stdout: &stdout,
		Stderr: &stderr,
		Stdin:  strings.NewReader(stdin),
	})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}

	root := NewRootCommand(app)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())

	return cliResult{stdout: stdout.String(), stderr: stderr.String(), app: app, err: err}
}

// exitCode returns the process exit code Execute would use for r.
func (r cliResult) exitCode() types.ExitCode {
	if r.err != nil {
		var exitErr *ExitError
		if errors.As(r.err, &exitErr) {
			return exitErr.Code
		}
		return types.ExitUsage
	}
	return r.app.ExitCode()
}
