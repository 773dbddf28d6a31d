package compsxml

import "testing"

func TestDiagnostics(t *testing.T) {
	ds := Diagnostics{
		{Message: "unknown element <x> in <comps> ignored", Line: 2, Column: 5},
		{Message: "invalid boolean \"maybe\" in <default> of group \"g\"", IsError: true, Line: 4, Column: 9},
		{Message: "no position"},
	}

	if !ds.HasErrors() {
		t.Error("expected HasErrors")
	}
	if got := len(ds.Warnings()); got != 2 {
		t.Errorf("Warnings() = %d, want 2", got)
	}
	if got := len(ds.Errors()); got != 1 {
		t.Errorf("Errors() = %d, want 1", got)
	}

	want := "2:5: warning: unknown element <x> in <comps> ignored\n" +
		"4:9: error: invalid boolean \"maybe\" in <default> of group \"g\"\n" +
		"warning: no position"
	if got := ds.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	var empty Diagnostics
	if empty.HasErrors() || empty.String() != "" {
		t.Error("empty diagnostics should report nothing")
	}
}
