// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger. It writes to stderr so that
// stdout carries only results; --verbose lowers the level to debug.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "postcode",
		Level:  log.WarnLevel,
	})
}
