// SPDX-License-Identifier: MPL-2.0

package postcode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPostcode is the sentinel error wrapped by EmptyPostcodeError.
	ErrEmptyPostcode = errors.New("empty postcode")
	// ErrIncorrectValueType is the sentinel error wrapped by IncorrectValueTypeError.
	ErrIncorrectValueType = errors.New("incorrect postcode part type")
	// ErrInvalidValues is the sentinel error wrapped by InvalidValuesError.
	ErrInvalidValues = errors.New("invalid postcode parts")
	// ErrInvalidPostcode is the sentinel error wrapped by InvalidPostcodeError.
	ErrInvalidPostcode = errors.New("invalid postcode")
)

type (
	// EmptyPostcodeError is returned when an empty string is given for validation.
	// It is distinct from a postcode that was given but does not match the grammar.
	EmptyPostcodeError struct{}

	// IncorrectValueTypeError is returned by FormatValues when a part is not a
	// string. The check happens before any concatenation.
	IncorrectValueTypeError struct {
		// Part names the offending part ("area", "district", "sector" or "unit").
		Part string
		// Value is the value that was supplied.
		Value any
	}

	// InvalidValuesError is returned when the composed postcode does not match
	// the grammar. It carries the parts as given and no corrected value.
	InvalidValuesError struct {
		Parts Parts
	}

	// InvalidPostcodeError is returned by Parse and Decompose when a non-empty
	// string does not match the grammar.
	InvalidPostcodeError struct {
		Value string
	}
)

// Error implements the error interface for EmptyPostcodeError.
func (e *EmptyPostcodeError) Error() string {
	return "empty string provided as postcode"
}

// Unwrap returns ErrEmptyPostcode for errors.Is() compatibility.
func (e *EmptyPostcodeError) Unwrap() error { return ErrEmptyPostcode }

// Error implements the error interface for IncorrectValueTypeError.
func (e *IncorrectValueTypeError) Error() string {
	return fmt.Sprintf("postcode %s must be a string (got %T)", e.Part, e.Value)
}

// Unwrap returns ErrIncorrectValueType for errors.Is() compatibility.
func (e *IncorrectValueTypeError) Unwrap() error { return ErrIncorrectValueType }

// Error implements the error interface for InvalidValuesError.
func (e *InvalidValuesError) Error() string {
	return fmt.Sprintf("invalid postcode parts (area %q, district %q, sector %q, unit %q): composed value is not a valid postcode",
		e.Parts.Area, e.Parts.District, e.Parts.Sector, e.Parts.Unit)
}

// Unwrap returns ErrInvalidValues for errors.Is() compatibility.
func (e *InvalidValuesError) Unwrap() error { return ErrInvalidValues }

// Error implements the error interface for InvalidPostcodeError.
func (e *InvalidPostcodeError) Error() string {
	return fmt.Sprintf("invalid postcode %q: does not match the UK postcode format", e.Value)
}

// Unwrap returns ErrInvalidPostcode for errors.Is() compatibility.
func (e *InvalidPostcodeError) Unwrap() error { return ErrInvalidPostcode }
