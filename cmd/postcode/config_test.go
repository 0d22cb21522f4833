// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/ukpostcode/postcode/internal/config"
	"github.com/ukpostcode/postcode/internal/issue"
	"github.com/ukpostcode/postcode/internal/testutil"
	"github.com/ukpostcode/postcode/pkg/types"
)

func TestConfigShow(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.UI.ColorScheme = config.ColorSchemeDark

	res := runCLI(t, stubConfigProvider{cfg: cfg}, "", "config", "show")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	for _, want := range []string{"Current Configuration", "output_format", "text", "color_scheme", "dark"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout should contain %q, got:\n%s", want, res.stdout)
		}
	}
}

func TestConfigShow_JSON(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "config", "show", "-o", "json")
	var got config.Config
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if got != *config.DefaultConfig() {
		t.Errorf("config = %+v, want defaults", got)
	}
}

func TestConfigShow_LoadFailure(t *testing.T) {
	t.Parallel()

	loadErr := issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		Wrap(errors.New("output_format: conflicting values")).
		BuildError()

	res := runCLI(t, stubConfigProvider{err: loadErr}, "", "config", "show")
	if res.exitCode() != types.ExitUsage {
		t.Errorf("exit code = %v, want %v", res.exitCode(), types.ExitUsage)
	}
	var svcErr *ServiceError
	if !errors.As(res.err, &svcErr) || svcErr.IssueID != issue.ConfigLoadFailedId {
		t.Errorf("expected a ServiceError for ConfigLoadFailedId, got %v", res.err)
	}
}

func TestConfigDump(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.OutputFormat = config.OutputFormatJSON

	res := runCLI(t, stubConfigProvider{cfg: cfg}, "", "config", "dump")
	if !strings.Contains(res.stdout, `output_format: "json"`) {
		t.Errorf("CUE dump should contain the output format, got:\n%s", res.stdout)
	}

	res = runCLI(t, stubConfigProvider{cfg: cfg}, "", "config", "dump", "--format", "toml")
	var decoded config.Config
	if err := toml.Unmarshal([]byte(res.stdout), &decoded); err != nil {
		t.Fatalf("TOML dump does not parse: %v\n%s", err, res.stdout)
	}
	if decoded.OutputFormat != config.OutputFormatJSON {
		t.Errorf("TOML dump output_format = %q, want json", decoded.OutputFormat)
	}

	res = runCLI(t, nil, "", "config", "dump", "--format", "yaml")
	if res.exitCode() != types.ExitUsage {
		t.Errorf("unknown dump format: exit code = %v, want %v", res.exitCode(), types.ExitUsage)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	t.Cleanup(config.Reset)
	dir := filepath.Join(t.TempDir(), "postcode")
	config.SetConfigDirOverride(dir)

	res := runCLI(t, nil, "", "config", "init")
	if res.err != nil {
		t.Fatalf("config init failed: %v", res.err)
	}
	if !strings.Contains(res.stdout, config.FilePath(dir)) {
		t.Errorf("config init should print the file path, got:\n%s", res.stdout)
	}

	res = runCLI(t, config.NewProvider(), "", "config", "path")
	if !strings.Contains(res.stdout, "Config directory: "+dir) {
		t.Errorf("config path should print the directory, got:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, "Loaded from: "+config.FilePath(dir)) {
		t.Errorf("config path should report the loaded file, got:\n%s", res.stdout)
	}
}

func TestConfigFlag(t *testing.T) {
	t.Parallel()

	path := testutil.MustWriteFile(t, filepath.Join(t.TempDir(), "custom.cue"), `output_format: "json"`)

	res := runCLI(t, config.NewProvider(), "", "--config", path, "validate", "EC1A 1BB")
	if !strings.HasPrefix(strings.TrimSpace(res.stdout), "[") {
		t.Errorf("--config file selecting json should print JSON, got:\n%s", res.stdout)
	}
}
