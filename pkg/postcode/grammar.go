// SPDX-License-Identifier: MPL-2.0

package postcode

import "regexp"

// Grammar fragments. The second letter of a two-letter outward code never
// uses I, J or Z.
const (
	letter           = `[A-Za-z]`
	restrictedLetter = `[A-HK-Ya-hk-y]`
	digit            = `[0-9]`

	// girobank is the non-geographic "GIR 0AA" code.
	girobank = `[Gg][Ii][Rr] 0` + letter + `{2}`

	outwardCode = `(?:` +
		letter + digit + `{1,2}` + `|` +
		letter + restrictedLetter + digit + `{1,2}` + `|` +
		letter + digit + letter + `|` +
		letter + restrictedLetter + digit + `?` + letter +
		`)`

	inwardCode = digit + letter + `{2}`

	// Pattern is the full anchored UK postcode grammar.
	Pattern = `^(?:` + girobank + `|` + outwardCode + ` ` + inwardCode + `)$`
)

// grammar is compiled once and only ever read.
var grammar = regexp.MustCompile(Pattern)

func matches(s string) bool {
	return grammar.MatchString(s)
}
