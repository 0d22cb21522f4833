// SPDX-License-Identifier: MPL-2.0

// Package postcode validates and formats United Kingdom postcodes against the
// structural postcode grammar.
//
// A postcode is an outward code (area + district) and an inward code
// (sector + unit) separated by exactly one space, e.g. "EC1A 1BB". The special
// Girobank code "GIR 0AA" is accepted as well. Matching is anchored and
// case-insensitive; no whitespace is trimmed and nothing is repaired.
//
// Validation answers "is this string a postcode?":
//
//	ok, err := postcode.IsValid("EC1A 1BB") // true, nil
//	ok, err = postcode.IsValid("")          // false, *EmptyPostcodeError
//
// Formatting assembles a postcode from its parts and validates the result:
//
//	p, err := postcode.Format("EC", "1A", "1", "BB") // "EC1A 1BB", nil
//
// FormatValues accepts untyped values (for example decoded JSON) and reports
// non-string parts with *IncorrectValueTypeError before anything is joined.
//
// All functions are pure and safe for concurrent use.
//
// See https://en.wikipedia.org/wiki/Postcodes_in_the_United_Kingdom#Formatting
// for the formatting rules.
//
// This package is a leaf dependency: it imports only the standard library.
package postcode
