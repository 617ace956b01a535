package memo

import (
	"reflect"
	"strings"
	"testing"
)

const template = `MEMORANDUM
Site: [Site Name]
Circuit: [Circuit]
Verdict: [flag]
Reviewed by: [Site Name]
Open item: [Unfilled]`

func TestPlaceholders(t *testing.T) {
	got := Placeholders(template)
	want := []string{"[Site Name]", "[Circuit]", "[flag]", "[Unfilled]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFill(t *testing.T) {
	out := Fill(template, map[string]string{
		"Site Name": "Unit 300",
		"[Circuit]": "C-12", // bracketed keys work too
		"flag":      "GREEN",
	})

	for _, want := range []string{"Site: Unit 300", "Circuit: C-12", "Verdict: GREEN", "Reviewed by: Unit 300"} {
		if !strings.Contains(out, want) {
			t.Fatalf("filled memo missing %q:\n%s", want, out)
		}
	}
	// Unknown placeholders stay visible.
	if !strings.Contains(out, "[Unfilled]") {
		t.Fatalf("unfilled placeholder must remain:\n%s", out)
	}
}

func TestStripComments(t *testing.T) {
	in := "{\n// site block\n\"a\": 1\n}"
	out := StripComments(in)
	if strings.Contains(out, "site block") {
		t.Fatalf("comment line survived: %q", out)
	}
	if !strings.Contains(out, "\"a\": 1") {
		t.Fatalf("content line lost: %q", out)
	}
}
