package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBuildCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeGridFixture(t)

	out, _, err := runCLI(t, env, "", "build")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, out, "3 in 2 families")
	requireContains(t, out, "2 created, 0 already present")

	index, err := os.ReadFile(filepath.Join(env.root, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	requireContains(t, string(index), "CSS Grid Layout Module Level 2</a> (current work)")
	if _, err := os.Stat(filepath.Join(env.root, "css-grid", "index.html")); err != nil {
		t.Fatalf("expected css-grid redirect: %v", err)
	}

	_, _, err = runCLI(t, env, "", "build")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected second build to refuse overwriting, got %v", err)
	}
}

func TestBuildCommandJSONWithSymlinks(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeGridFixture(t)
	env.writeConfig(t, "[aliases]\nstrategy = \"symlink\"\n")

	out, _, err := runCLI(t, env, "", "build", "--json")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var summary struct {
		RunID          string `json:"run_id"`
		Specs          int    `json:"specs"`
		AliasesCreated int    `json:"aliases_created"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\n%s", err, out)
	}
	if summary.RunID == "" || summary.Specs != 3 || summary.AliasesCreated != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	if _, _, err := runCLI(t, env, "", "build", "--force"); err != nil {
		t.Fatalf("forced rebuild: %v", err)
	}
}

func TestBuildCommandWritesLogFile(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeGridFixture(t)
	logPath := filepath.Join(env.baseDir, "logs", "specindex.log")
	env.writeConfig(t, "[logging]\nfile = \""+logPath+"\"\n")

	_, stderr, err := runCLI(t, env, "", "build")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, stderr, "build started")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	requireContains(t, string(content), "build started")
	requireContains(t, string(content), "build finished")
}

func TestListCommandTable(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeGridFixture(t)

	out, _, err := runCLI(t, env, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Revising")
	requireContains(t, out, "Completed")
	requireContains(t, out, "3 specs in 2 families")
	if _, err := os.Stat(filepath.Join(env.root, "index.html")); !os.IsNotExist(err) {
		t.Fatalf("list must not write the index: %v", err)
	}
}

func TestListCommandJSONAndYAML(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeGridFixture(t)

	out, _, err := runCLI(t, env, "", "list", "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}
	var views []familyView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(views) != 2 || views[0].Shortname != "css-grid" || views[0].Current != "css-grid-2" {
		t.Fatalf("unexpected listing: %+v", views)
	}

	out, _, err = runCLI(t, env, "", "list", "--yaml")
	if err != nil {
		t.Fatalf("list --yaml: %v", err)
	}
	var yamlViews []familyView
	if err := yaml.Unmarshal([]byte(out), &yamlViews); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(yamlViews) != 2 || yamlViews[1].Current != "selectors-4" {
		t.Fatalf("unexpected yaml listing: %+v", yamlViews)
	}

	if _, _, err := runCLI(t, env, "", "list", "--json", "--yaml"); err == nil {
		t.Fatal("expected conflicting flags to fail")
	}
}

func TestRedirectCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	output := filepath.Join(env.baseDir, "output")

	out, _, err := runCLI(t, env, "", "redirect", "css-color-6", "--output", output, "--base", "https://drafts.example.org/")
	if err != nil {
		t.Fatalf("redirect: %v", err)
	}
	requireContains(t, out, "Wrote redirect")

	page, err := os.ReadFile(filepath.Join(output, "css-color-6", "index.html"))
	if err != nil {
		t.Fatalf("read redirect: %v", err)
	}
	requireContains(t, string(page), "https://drafts.example.org/css-color-6/")

	if _, _, err := runCLI(t, env, "", "redirect", "css-color-6", "--output", output); err == nil {
		t.Fatal("expected existing folder to fail")
	}
	if _, _, err := runCLI(t, env, "", "redirect"); err == nil {
		t.Fatal("expected missing folder argument to fail")
	}
}

func TestReportCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "build-output.html")
	stdin := "[\n{\"lineNum\": 3, \"messageType\": \"warning\", \"text\": \"Unknown key\"},\n"

	out, _, err := runCLI(t, env, stdin, "report", "css-grid-2/Overview.bs", target)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireContains(t, out, "Wrote 1 messages")

	page, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	requireContains(t, string(page), "Unknown key")
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "", "check")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "not found, using defaults")
	requireContains(t, out, "Spec root:")

	env.writeConfig(t, "[metadata]\nreader = \"command\"\ncommand = \"clearly-not-present-binary\"\n")
	out, _, err = runCLI(t, env, "", "check")
	if err == nil {
		t.Fatalf("expected missing metadata command to fail, got:\n%s", out)
	}
	requireContains(t, out, "Missing dependencies:")
}
