// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		EmptyPostcodeId,
		InvalidPostcodeId,
		IncorrectValueTypeId,
		InvalidValuesId,
		InputReadFailedId,
		ConfigLoadFailedId,
		PartsDocumentInvalidId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil; every Id needs a catalog entry", id)
		}
	}

	if EmptyPostcodeId != 1 {
		t.Errorf("EmptyPostcodeId = %d, want 1", EmptyPostcodeId)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{EmptyPostcodeId, false, "No postcode given"},
		{InvalidPostcodeId, false, "Not a valid UK postcode"},
		{IncorrectValueTypeId, false, "not text"},
		{InvalidValuesId, false, "do not make a postcode"},
		{InputReadFailedId, false, "Failed to read input"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{PartsDocumentInvalidId, false, "Failed to parse parts document"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("issue.Id() = %d, want %d", issue.Id(), tt.id)
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	values := Values()

	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not ordered by Id at index %d", i)
		}
	}
}

func TestLookup(t *testing.T) {
	seen := make(map[string]bool)
	for _, i := range Values() {
		if i.Name() == "" {
			t.Errorf("issue %d has no name", i.Id())
		}
		if seen[i.Name()] {
			t.Errorf("duplicate issue name %q", i.Name())
		}
		seen[i.Name()] = true

		if got := Lookup(i.Name()); got != i {
			t.Errorf("Lookup(%q) did not return issue %d", i.Name(), i.Id())
		}
	}

	if Lookup("no-such-issue") != nil {
		t.Error("Lookup() of an unknown name should return nil")
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	issue := Get(InvalidPostcodeId)

	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("InvalidPostcode issue should link to the formatting rules")
	}

	original := links[0]
	links[0] = "modified"
	if issue.ExtLinks()[0] != original {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	rendered, err := Get(InvalidPostcodeId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if !strings.Contains(rendered, "EC1A 1BB") {
		t.Error("Render() output should contain the example postcodes")
	}
	if !strings.Contains(rendered, "See also") || !strings.Contains(rendered, string(formattingRulesLink)) {
		t.Error("Render() output should list the links")
	}
}

func TestIssue_RenderWithGlamour(t *testing.T) {
	rendered, err := Get(EmptyPostcodeId).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "No postcode given") {
		t.Errorf("rendered output should contain the heading, got:\n%s", rendered)
	}
}
