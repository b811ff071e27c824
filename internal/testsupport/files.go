package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// BikeshedSource renders a minimal structured spec source with a metadata
// block.
func BikeshedSource(shortname, level, title, status string) string {
	return "<pre class=metadata>\nTitle: " + title + "\nShortname: " + shortname +
		"\nLevel: " + level + "\nWork Status: " + status + "\n</pre>\n\nIntroduction {#intro}\n"
}

// WriteGridFixture lays out two css-grid levels as structured sources and a
// plain-HTML selectors-4 spec, plus a folder that is not a spec.
func WriteGridFixture(t testing.TB, root string) {
	t.Helper()

	WriteFile(t, filepath.Join(root, "css-grid-1", "Overview.bs"),
		BikeshedSource("css-grid", "1", "CSS Grid Layout Module Level 1", "completed"))
	WriteFile(t, filepath.Join(root, "css-grid-2", "Overview.bs"),
		BikeshedSource("css-grid", "2", "CSS Grid Layout Module Level 2", "revising"))
	WriteFile(t, filepath.Join(root, "selectors-4", "Overview.html"),
		"<html><head><title>Selectors Level 4</title></head></html>")
	WriteFile(t, filepath.Join(root, "bin", "README.md"), "tooling, not a spec")
}
