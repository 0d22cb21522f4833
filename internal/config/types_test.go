// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"strings"
	"testing"
)

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value OutputFormat
		want  bool
	}{
		{OutputFormatText, true},
		{OutputFormatJSON, true},
		{"", false},
		{"JSON", false},
		{"yaml", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Errorf("OutputFormat(%q).IsValid() = %v, want %v", tt.value, valid, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidOutputFormat) {
					t.Errorf("expected ErrInvalidOutputFormat, got %v", errs)
				}
				var fmtErr *InvalidOutputFormatError
				if !errors.As(errs[0], &fmtErr) || fmtErr.Value != tt.value {
					t.Errorf("expected *InvalidOutputFormatError with value %q, got %v", tt.value, errs[0])
				}
			}
		})
	}
}

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value ColorScheme
		want  bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{"", false},
		{"solarized", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.value, valid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidColorScheme) {
				t.Errorf("expected ErrInvalidColorScheme, got %v", errs[0])
			}
		})
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Fatalf("DefaultConfig() should be valid, got %v", errs)
	}

	cfg := DefaultConfig()
	cfg.OutputFormat = "xml"
	cfg.UI.ColorScheme = "neon"

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("config with bad output format and color scheme should be invalid")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidConfig) {
		t.Fatalf("expected a single ErrInvalidConfig, got %v", errs)
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
	if !errors.Is(cfgErr.FieldErrors[1], ErrInvalidUIConfig) {
		t.Errorf("second field error should wrap ErrInvalidUIConfig, got %v", cfgErr.FieldErrors[1])
	}

	msg := cfgErr.Error()
	for _, want := range []string{`"xml"`, `"neon"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("InvalidConfigError message %q should mention %s", msg, want)
		}
	}
}
