// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ukpostcode/postcode/internal/config"
	"github.com/ukpostcode/postcode/pkg/types"
)

type (
	settingsContextKey struct{}

	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and write
	// through its writers.
	App struct {
		Config ConfigProvider
		Logger *log.Logger
		stdout io.Writer
		stderr io.Writer
		stdin  io.Reader

		flags    globalFlags
		exitCode types.ExitCode
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Logger *log.Logger
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// globalFlags holds the persistent flag values of the root command.
	globalFlags struct {
		configPath string
		verbose    bool
		output     string
	}

	// settings are the effective options for one invocation: flags layered
	// over the loaded configuration.
	settings struct {
		Config  *config.Config
		Output  config.OutputFormat
		Verbose bool
	}
)

// NewApp creates an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Logger == nil {
		deps.Logger = newLogger(deps.Stderr)
	}

	return &App{
		Config: deps.Config,
		Logger: deps.Logger,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		stdin:  deps.Stdin,
	}, nil
}

// ExitCode returns the most severe exit code recorded by commands that
// report results rather than fail.
func (a *App) ExitCode() types.ExitCode {
	return a.exitCode
}

func (a *App) recordExitCode(code types.ExitCode) {
	a.exitCode = a.exitCode.Max(code)
}

// resolveSettings loads configuration and layers the global flags on top.
// A configuration that fails to load is reported as a warning and replaced by
// defaults so that postcode checks still run.
func (a *App) resolveSettings(ctx context.Context) (*settings, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		cfg = config.DefaultConfig()
	}

	s := &settings{
		Config:  cfg,
		Output:  cfg.OutputFormat,
		Verbose: a.flags.verbose || cfg.UI.Verbose,
	}

	if a.flags.output != "" {
		s.Output = config.OutputFormat(a.flags.output)
		if valid, errs := s.Output.IsValid(); !valid {
			return nil, &ExitError{Code: types.ExitUsage, Err: errs[0]}
		}
	}

	if s.Verbose {
		a.Logger.SetLevel(log.DebugLevel)
	}

	return s, nil
}

// fail wraps a ServiceError in an ExitError, rendering its issue help first
// when verbose output is on.
func (a *App) fail(ctx context.Context, code types.ExitCode, svcErr *ServiceError) error {
	if s := settingsFromContext(ctx); s.Verbose {
		renderServiceError(a.stderr, a.Logger, svcErr, s.Config.UI.ColorScheme.String())
	}
	return &ExitError{Code: code, Err: svcErr}
}

func contextWithSettings(ctx context.Context, s *settings) context.Context {
	return context.WithValue(ctx, settingsContextKey{}, s)
}

// settingsFromContext returns the invocation settings, or defaults when the
// root pre-run hook did not run (e.g. a subcommand executed directly in tests).
func settingsFromContext(ctx context.Context) *settings {
	if s, ok := ctx.Value(settingsContextKey{}).(*settings); ok && s != nil {
		return s
	}
	cfg := config.DefaultConfig()
	return &settings{Config: cfg, Output: cfg.OutputFormat}
}

// openInput opens path for reading; "-" means the App's stdin.
func (a *App) openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(a.stdin), nil
	}
	return os.Open(path)
}
