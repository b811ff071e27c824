package metadata

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Overview.bs")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestBlockReaderParsesMetadata(t *testing.T) {
	path := writeSource(t, `<pre class='metadata'>
Title: CSS Grid Layout Module Level 2
Shortname: CSS-Grid
Level: 2
Status: ED
Work Status: Revising
Abstract: This CSS module defines a two-dimensional grid-based layout system,
    optimized for user interface design.
</pre>

Introduction {#intro}
`)

	fields, err := BlockReader{}.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fields.Shortname != "css-grid" {
		t.Fatalf("unexpected shortname: %q", fields.Shortname)
	}
	if fields.Level != 2 {
		t.Fatalf("unexpected level: %d", fields.Level)
	}
	if !fields.HasTitle || fields.Title != "CSS Grid Layout Module Level 2" {
		t.Fatalf("unexpected title: %q (has=%v)", fields.Title, fields.HasTitle)
	}
	if fields.WorkStatus != "revising" {
		t.Fatalf("unexpected work status: %q", fields.WorkStatus)
	}
}

func TestBlockReaderFallsBackToH1(t *testing.T) {
	path := writeSource(t, `<h1>CSS Easing Functions Level 2</h1>
<pre class=metadata>
Shortname: css-easing
Level: none
Work Status: completed
</pre>
`)

	fields, err := BlockReader{}.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fields.Title != "CSS Easing Functions Level 2" || !fields.HasTitle {
		t.Fatalf("expected h1 title, got %q", fields.Title)
	}
	if fields.Level != 0 {
		t.Fatalf("expected level none to map to 0, got %d", fields.Level)
	}
	if fields.WorkStatus != "completed" {
		t.Fatalf("unexpected work status: %q", fields.WorkStatus)
	}
}

func TestBlockReaderJoinsMultiLineH1(t *testing.T) {
	path := writeSource(t, `<h1 class="p-name">
  CSS Fonts
  Module Level 4
</h1>
<pre class=metadata>
Shortname: css-fonts
Level: 4
</pre>
`)

	fields, err := BlockReader{}.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !fields.HasTitle || fields.Title != "CSS Fonts Module Level 4" {
		t.Fatalf("expected joined h1 title, got %q (has=%v)", fields.Title, fields.HasTitle)
	}
}

func TestBlockReaderLaterBlockOverrides(t *testing.T) {
	path := writeSource(t, `<pre class="metadata">Shortname: css-foo
Level: 1</pre>
<pre class="metadata">
Level: 3
</pre>
`)

	fields, err := BlockReader{}.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fields.Shortname != "css-foo" || fields.Level != 3 {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	if fields.HasTitle {
		t.Fatalf("expected no title, got %q", fields.Title)
	}
	if fields.WorkStatus != "" {
		t.Fatalf("expected empty work status, got %q", fields.WorkStatus)
	}
}

func TestBlockReaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no block", content: "<h1>Nothing</h1>\n", want: "no metadata block"},
		{name: "no shortname", content: "<pre class=metadata>\nLevel: 1\n</pre>\n", want: "Shortname"},
		{name: "bad level", content: "<pre class=metadata>\nShortname: x\nLevel: 2.1\n</pre>\n", want: "invalid level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BlockReader{}.Read(context.Background(), writeSource(t, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]int{"": 0, "none": 0, "None": 0, " 4 ": 4, "2022": 2022}
	for input, want := range tests {
		got, err := ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %d, want %d", input, got, want)
		}
	}
	if _, err := ParseLevel("two"); err == nil {
		t.Fatal("expected error for non-numeric level")
	}
}
