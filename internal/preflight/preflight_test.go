package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"specindex/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryReadable("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckOutputDirectory_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "public")
	result := CheckOutputDirectory("output", path)
	if !result.Passed {
		t.Fatalf("expected missing output under writable dir to pass, got: %s", result.Detail)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("check must not create the directory: %v", err)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}

func TestRunAll_SeparateOutput(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Root = t.TempDir()
	cfg.Paths.Output = filepath.Join(t.TempDir(), "out")
	cfg.Paths.TimestampsFile = filepath.Join(t.TempDir(), "data", "timestamps.json")

	results := RunAll(&cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %+v", len(results), results)
	}
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("expected all checks to pass, got %+v", failed)
	}
}

func TestRunAll_MissingRoot(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Root = filepath.Join(t.TempDir(), "missing")
	cfg.Paths.Output = cfg.Paths.Root

	results := RunAll(&cfg)
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected a single failing root check, got %+v", results)
	}
}
