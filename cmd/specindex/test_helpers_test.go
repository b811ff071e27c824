package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"specindex/internal/testsupport"
)

type cliTestEnv struct {
	root       string
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("SPECINDEX_ROOT", "")

	root := filepath.Join(base, "drafts")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}

	return &cliTestEnv{
		root:       root,
		configPath: filepath.Join(base, "specindex.toml"),
		baseDir:    base,
	}
}

func (e *cliTestEnv) writeGridFixture(t *testing.T) {
	t.Helper()
	testsupport.WriteGridFixture(t, e.root)
}

func (e *cliTestEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(e.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	flags := []string{"--config", env.configPath, "--root", env.root}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
