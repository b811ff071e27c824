package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"specindex/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose spec root is a fresh, empty temp
// directory. Output follows the root as it does for a loaded config.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	root := filepath.Join(base, "drafts")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir spec root: %v", err)
	}
	cfgVal := config.Default()
	cfgVal.Paths.Root = root
	cfgVal.Paths.Output = root
	cfgVal.Paths.RedirectOutput = filepath.Join(base, "redirects")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAliasStrategy selects symlink or redirect aliases.
func WithAliasStrategy(strategy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Aliases.Strategy = strategy
	}
}

// WithTimestamps enables the timestamps file below the base directory.
func WithTimestamps() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.TimestampsFile = filepath.Join(b.baseDir, "data", "timestamps.json")
	}
}

// WithSeparateOutput writes the index and aliases outside the spec root.
func WithSeparateOutput() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.Output = filepath.Join(b.baseDir, "site")
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}
		b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.Root)
}
