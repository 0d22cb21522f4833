// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies an issue in the catalog.
type Id int

const (
	EmptyPostcodeId Id = iota + 1
	InvalidPostcodeId
	IncorrectValueTypeId
	InvalidValuesId
	InputReadFailedId
	ConfigLoadFailedId
	PartsDocumentInvalidId
)

// MarkdownMsg is Markdown text shown to the user.
type MarkdownMsg string

// HttpLink is a URL listed under "See also".
type HttpLink string

// Issue is one catalog entry.
type Issue struct {
	id       Id          // ID used to lookup the issue
	name     string      // stable name used on the command line
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Name() string {
	return i.name
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue with the given glamour style ("dark", "light",
// "auto", or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

const formattingRulesLink HttpLink = "https://en.wikipedia.org/wiki/Postcodes_in_the_United_Kingdom#Formatting"

var (
	render = glamour.Render

	emptyPostcodeIssue = &Issue{
		id:   EmptyPostcodeId,
		name: "empty-postcode",
		mdMsg: `
# No postcode given!

An empty value was passed where a postcode was expected. Nothing was checked.

## Things you can try:
- Pass the postcode as an argument:
~~~
$ postcode validate "EC1A 1BB"
~~~
- When reading from a file, remove blank lines or check that the file is not empty`,
		extLinks: []HttpLink{formattingRulesLink},
	}

	invalidPostcodeIssue = &Issue{
		id:   InvalidPostcodeId,
		name: "invalid-postcode",
		mdMsg: `
# Not a valid UK postcode!

The value does not match the UK postcode format.

## The format
A postcode is an **outward code**, exactly one space, and an **inward code**:

| Shape     | Example    |
|-----------|------------|
| AA9A 9AA  | EC1A 1BB   |
| A9A 9AA   | W1A 0AX    |
| A9 9AA    | M1 1AE     |
| A99 9AA   | B33 8TH    |
| AA9 9AA   | CR2 6XH    |
| AA99 9AA  | DN55 1PT   |
| GIR 0AA   | GIR 0AA    |

The second letter of a two-letter area is never I, J or Z.

## Common mistakes:
- Missing space: ` + "`EC1A1BB`" + `
- Leading, trailing or doubled spaces: ` + "`\" M1 1AE\"`" + `, ` + "`W1A  0AX`" + `
- Extra characters after the unit: ` + "`EC1A 1BB2`",
		extLinks: []HttpLink{formattingRulesLink},
	}

	incorrectValueTypeIssue = &Issue{
		id:   IncorrectValueTypeId,
		name: "incorrect-value-type",
		mdMsg: `
# Postcode part is not text!

Every postcode part (area, district, sector and unit) must be a string.
A number such as ` + "`sector: 1`" + ` or a missing field is rejected before anything is joined.

## Things you can try:
- Quote the value in your parts document:
~~~cue
postcodes: [
  {area: "EC", district: "1A", sector: "1", unit: "BB"},
]
~~~`,
	}

	invalidValuesIssue = &Issue{
		id:   InvalidValuesId,
		name: "invalid-values",
		mdMsg: `
# These parts do not make a postcode!

The parts were joined as ` + "`area + district + \" \" + sector + unit`" + `, upper-cased,
and the result does not match the UK postcode format.

## Expected parts:
- **area**: one or two letters (` + "`EC`" + `, ` + "`M`" + `)
- **district**: one or two letters or digits (` + "`1A`" + `, ` + "`33`" + `)
- **sector**: one digit
- **unit**: two letters

## Example:
~~~
$ postcode format EC 1A 1 BB
EC1A 1BB
~~~`,
		extLinks: []HttpLink{formattingRulesLink},
	}

	inputReadFailedIssue = &Issue{
		id:   InputReadFailedId,
		name: "input-read-failed",
		mdMsg: `
# Failed to read input!

The input file could not be read.

## Things you can try:
- Check that the path exists and is readable
- Use ` + "`-`" + ` to read from standard input:
~~~
$ cat postcodes.txt | postcode validate --file -
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		name: "config-load-failed",
		mdMsg: `
# Failed to load configuration!

The configuration file could not be loaded.

## Things you can try:
- Show where the configuration is read from:
~~~
$ postcode config path
~~~
- Recreate the default configuration:
~~~
$ postcode config init
~~~

## Example configuration:
~~~cue
output_format: "text"
upper_case_input: false
ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	partsDocumentInvalidIssue = &Issue{
		id:   PartsDocumentInvalidId,
		name: "parts-document-invalid",
		mdMsg: `
# Failed to parse parts document!

The parts document must be CUE or JSON with a ` + "`postcodes`" + ` list.

## Example:
~~~json
{
  "postcodes": [
    {"area": "EC", "district": "1A", "sector": "1", "unit": "BB"},
    {"area": "W", "district": "1A", "sector": "0", "unit": "AX"}
  ]
}
~~~

Only the fields area, district, sector and unit are allowed in a record.`,
	}

	issues = map[Id]*Issue{
		emptyPostcodeIssue.Id():        emptyPostcodeIssue,
		invalidPostcodeIssue.Id():      invalidPostcodeIssue,
		incorrectValueTypeIssue.Id():   incorrectValueTypeIssue,
		invalidValuesIssue.Id():        invalidValuesIssue,
		inputReadFailedIssue.Id():      inputReadFailedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		partsDocumentInvalidIssue.Id(): partsDocumentInvalidIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

// Get returns the issue with the given Id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// Lookup returns the issue with the given name, or nil.
func Lookup(name string) *Issue {
	values := Values()
	idx := slices.IndexFunc(values, func(i *Issue) bool { return i.name == name })
	if idx < 0 {
		return nil
	}
	return values[idx]
}
