package deps

import (
	"os"
	"path/filepath"
	"testing"

	"specindex/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for unset command: %q", results[2].Detail)
	}
}

func TestRequirementsNativeReader(t *testing.T) {
	cfg := config.Default()
	reqs := Requirements(&cfg)
	if len(reqs) != 1 {
		t.Fatalf("expected only the optional bikeshed requirement, got %#v", reqs)
	}
	if !reqs[0].Optional {
		t.Fatalf("expected bikeshed to be optional")
	}
}

func TestRequirementsCommandReader(t *testing.T) {
	cfg := config.Default()
	cfg.Metadata.Reader = config.MetadataReaderCommand
	cfg.Metadata.Command = "clearly-not-present-binary"

	statuses := CheckBinaries(Requirements(&cfg))
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0].Name != "Metadata reader" {
		t.Fatalf("expected metadata reader to be missing, got %#v", missing)
	}
}
