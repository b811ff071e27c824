package main

import (
	"strings"
	"testing"
)

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"Shortname", "Folder", "Level"}, [][]string{
		{"css-grid", "css-grid-2", "2"},
		{"selectors"},
	}, []columnAlignment{alignLeft, alignLeft, alignRight})

	for _, want := range []string{"Shortname", "css-grid-2", "selectors"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<nil>") {
		t.Fatalf("short rows must render blank cells:\n%s", out)
	}
}

func TestRenderTableWithoutHeaders(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
