// SPDX-License-Identifier: MPL-2.0

package postcode

import "strings"

// Postcode is a UK postcode candidate such as "EC1A 1BB".
// The zero value ("") is not a postcode.
type Postcode string

// IsValid reports whether postcode matches the UK postcode grammar exactly.
// Letters may be in any case. Surrounding or repeated whitespace is never
// tolerated. An empty string returns *EmptyPostcodeError so callers can tell
// "nothing to check" apart from "checked and rejected".
func IsValid(postcode string) (bool, error) {
	if postcode == "" {
		return false, &EmptyPostcodeError{}
	}
	return matches(postcode), nil
}

// Parse returns s as a Postcode if it is valid. The input is returned as-is;
// callers wanting canonical case should upper-case it first.
func Parse(s string) (Postcode, error) {
	ok, err := IsValid(s)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &InvalidPostcodeError{Value: s}
	}
	return Postcode(s), nil
}

// String returns the string representation of the Postcode.
func (p Postcode) String() string { return string(p) }

// IsValid returns whether the Postcode matches the grammar, along with the
// reason when it does not.
func (p Postcode) IsValid() (bool, []error) {
	ok, err := IsValid(string(p))
	if err != nil {
		return false, []error{err}
	}
	if !ok {
		return false, []error{&InvalidPostcodeError{Value: string(p)}}
	}
	return true, nil
}

// Outward returns the part before the space, or "" if there is none.
func (p Postcode) Outward() string {
	outward, _, _ := strings.Cut(string(p), " ")
	return outward
}

// Inward returns the part after the space, or "" if there is none.
func (p Postcode) Inward() string {
	_, inward, _ := strings.Cut(string(p), " ")
	return inward
}
