// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the postcode CLI and its
// supporting packages.
//
// This package is a leaf dependency: it imports only the standard library.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitOK means every input was accepted.
	ExitOK ExitCode = 0
	// ExitInvalid means at least one input was rejected by the postcode grammar.
	ExitInvalid ExitCode = 1
	// ExitUsage means the input could not be checked at all: an empty
	// postcode, a part of the wrong type, or unreadable input or configuration.
	ExitUsage ExitCode = 2
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates that every input was accepted.
func (c ExitCode) IsSuccess() bool { return c == ExitOK }

// Max returns the more severe of c and other. ExitUsage outranks ExitInvalid.
func (c ExitCode) Max(other ExitCode) ExitCode {
	if other > c {
		return other
	}
	return c
}

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
