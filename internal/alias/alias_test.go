package alias

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"specindex/internal/catalog"
)

func selected(records ...catalog.Record) *catalog.Catalog {
	c := catalog.Group(records)
	c.SelectCurrentWork(catalog.NewExceptions(map[string]int{"css-grid": 2}, []string{"css-snapshot"}))
	return c
}

func TestPlan(t *testing.T) {
	c := selected(
		catalog.Record{Dir: "css-grid-1", Shortname: "css-grid", Level: 1, WorkStatus: catalog.StatusCompleted},
		catalog.Record{Dir: "css-grid-2", Shortname: "css-grid", Level: 2, WorkStatus: "revising"},
		catalog.Record{Dir: "selectors-4", Shortname: "selectors", Level: 4, WorkStatus: catalog.StatusCompleted},
		catalog.Record{Dir: "cssom-view", Shortname: "cssom-view", WorkStatus: catalog.StatusCompleted},
		catalog.Record{Dir: "css-2022", Shortname: "css-snapshot", Level: 2022, WorkStatus: catalog.StatusCompleted},
		catalog.Record{Dir: "css-2023", Shortname: "css-snapshot", Level: 2023, WorkStatus: "refining"},
	)

	want := []Alias{
		{Name: "css", Target: "css-2023"},
		{Name: "css-grid", Target: "css-grid-2"},
		{Name: "css-snapshot", Target: "css-2023"},
		{Name: "selectors", Target: "selectors-4"},
	}
	if diff := cmp.Diff(want, Plan(c, "css-snapshot", "css")); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanDistinctSingleSpecsNeedNoAliases(t *testing.T) {
	c := selected(
		catalog.Record{Dir: "cssom-view", Shortname: "cssom-view"},
		catalog.Record{Dir: "css-nesting", Shortname: "css-nesting"},
		catalog.Record{Dir: "compositing", Shortname: "compositing"},
	)
	if aliases := Plan(c, "css-snapshot", "css"); len(aliases) != 0 {
		t.Fatalf("expected no aliases, got %v", aliases)
	}
}

func TestRedirectEmitter(t *testing.T) {
	root := t.TempDir()
	emitter := RedirectEmitter{Root: root}

	outcome, err := emitter.Emit(Alias{Name: "css-grid", Target: "css-grid-2"})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Fatalf("unexpected outcome: %s", outcome)
	}

	content, err := os.ReadFile(filepath.Join(root, "css-grid", "index.html"))
	if err != nil {
		t.Fatalf("read redirect: %v", err)
	}
	for _, want := range []string{
		`<meta http-equiv="refresh" content="0; URL=../css-grid-2/" />`,
		`<a href="../css-grid-2/">css-grid-2</a>`,
	} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("expected %q in %s", want, content)
		}
	}

	_, err = emitter.Emit(Alias{Name: "css-grid", Target: "css-grid-2"})
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists on re-run, got %v", err)
	}
}

func TestRedirectEmitterReusesExistingFolder(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "css"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := (RedirectEmitter{Root: root}).Emit(Alias{Name: "css", Target: "css-2023"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
}

func TestSymlinkEmitter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "css-grid-2"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	emitter := SymlinkEmitter{Root: root}

	outcome, err := emitter.Emit(Alias{Name: "css-grid", Target: "css-grid-2"})
	if err != nil || outcome != OutcomeCreated {
		t.Fatalf("Emit: outcome=%s err=%v", outcome, err)
	}
	target, err := os.Readlink(filepath.Join(root, "css-grid"))
	if err != nil {
		t.Fatalf("readlink: %v", err)
	}
	if target != "css-grid-2" {
		t.Fatalf("expected relative link target, got %q", target)
	}

	outcome, err = emitter.Emit(Alias{Name: "css-grid", Target: "css-grid-3"})
	if err != nil || outcome != OutcomeExists {
		t.Fatalf("expected existing link to be tolerated, outcome=%s err=%v", outcome, err)
	}
	if target, _ := os.Readlink(filepath.Join(root, "css-grid")); target != "css-grid-2" {
		t.Fatalf("expected existing link to be kept, got %q", target)
	}
}

func TestNewEmitter(t *testing.T) {
	if e, err := NewEmitter("symlink", "/r"); err != nil || e != (SymlinkEmitter{Root: "/r"}) {
		t.Fatalf("unexpected symlink emitter: %#v %v", e, err)
	}
	if e, err := NewEmitter("redirect", "/r"); err != nil || e != (RedirectEmitter{Root: "/r"}) {
		t.Fatalf("unexpected redirect emitter: %#v %v", e, err)
	}
	if _, err := NewEmitter("copy", "/r"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestWriteStandaloneRedirect(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")

	index, err := WriteStandaloneRedirect(out, "https://w3c.github.io/csswg-drafts/", "css-grid-2")
	if err != nil {
		t.Fatalf("WriteStandaloneRedirect: %v", err)
	}
	if index != filepath.Join(out, "css-grid-2", "index.html") {
		t.Fatalf("unexpected index path: %s", index)
	}
	content, err := os.ReadFile(index)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(content), `URL=https://w3c.github.io/csswg-drafts/css-grid-2/"`) {
		t.Fatalf("unexpected redirect content: %s", content)
	}

	if _, err := WriteStandaloneRedirect(out, "https://example.org", "css-grid-2"); err == nil {
		t.Fatal("expected error when folder already exists")
	}
	for _, bad := range []string{"", "a/b", ".."} {
		if _, err := WriteStandaloneRedirect(out, "https://example.org", bad); err == nil {
			t.Fatalf("expected error for folder %q", bad)
		}
	}
}
