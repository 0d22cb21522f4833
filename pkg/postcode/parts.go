// SPDX-License-Identifier: MPL-2.0

package postcode

import (
	"reflect"
	"strings"
)

// Parts holds the four components of a postcode.
type Parts struct {
	// Area is one or two letters, e.g. "EC".
	Area string `json:"area"`
	// District is one or two alphanumerics, e.g. "1A".
	District string `json:"district"`
	// Sector is a single digit.
	Sector string `json:"sector"`
	// Unit is two letters.
	Unit string `json:"unit"`
}

// Format joins area+district, a space and sector+unit, upper-cases the
// result and validates it. The composed postcode is returned only when it
// matches the grammar; otherwise *InvalidValuesError is returned.
func Format(area, district, sector, unit string) (Postcode, error) {
	candidate := strings.ToUpper(area + district + " " + sector + unit)

	ok, err := IsValid(candidate)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &InvalidValuesError{Parts: Parts{Area: area, District: district, Sector: sector, Unit: unit}}
	}
	return Postcode(candidate), nil
}

// Format composes and validates the postcode described by p.
func (p Parts) Format() (Postcode, error) {
	return Format(p.Area, p.District, p.Sector, p.Unit)
}

// FormatValues is Format for callers holding untyped values, such as fields
// decoded from JSON or CUE. Every part must be a string (named string types
// are accepted); otherwise *IncorrectValueTypeError is returned before any
// concatenation takes place.
func FormatValues(area, district, sector, unit any) (Postcode, error) {
	names := [4]string{"area", "district", "sector", "unit"}
	values := [4]any{area, district, sector, unit}

	var parts [4]string
	for i, v := range values {
		s, ok := asString(v)
		if !ok {
			return "", &IncorrectValueTypeError{Part: names[i], Value: v}
		}
		parts[i] = s
	}

	return Format(parts[0], parts[1], parts[2], parts[3])
}

// Decompose splits a valid postcode into its parts. The outward code is split
// after its leading letters (at most two); "GIR 0AA" splits as area "G",
// district "IR". Letter case is preserved.
func Decompose(p Postcode) (Parts, error) {
	if ok, errs := p.IsValid(); !ok {
		return Parts{}, errs[0]
	}

	outward, inward := p.Outward(), p.Inward()

	areaLen := 0
	for areaLen < len(outward) && areaLen < 2 && isASCIILetter(outward[areaLen]) {
		areaLen++
	}
	if strings.EqualFold(outward, "GIR") {
		areaLen = 1
	}

	return Parts{
		Area:     outward[:areaLen],
		District: outward[areaLen:],
		Sector:   inward[:1],
		Unit:     inward[1:],
	}, nil
}

func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
