package metadata

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "spec-metadata")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestCommandReaderDecodesOutput(t *testing.T) {
	script := writeScript(t, `echo '{"shortname": "CSS-2022", "level": "none", "title": "CSS Snapshot 2022", "workStatus": "Completed", "path": "'"$1"'"}'`+"\n")
	reader := NewCommandReader(script, []string{"{path}"}, 5)

	fields, err := reader.Read(context.Background(), "/tmp/css-2022/Overview.bs")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fields.Shortname != "css-2022" || fields.Level != 0 {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	if !fields.HasTitle || fields.Title != "CSS Snapshot 2022" {
		t.Fatalf("unexpected title: %+v", fields)
	}
	if fields.WorkStatus != "completed" {
		t.Fatalf("unexpected work status: %q", fields.WorkStatus)
	}
}

func TestCommandReaderNumericLevelAndNullTitle(t *testing.T) {
	script := writeScript(t, `echo '{"shortname": "css-grid", "level": 2, "title": null, "workStatus": "revising"}'`+"\n")

	fields, err := NewCommandReader(script, nil, 5).Read(context.Background(), "Overview.bs")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fields.Level != 2 || fields.HasTitle {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestCommandReaderFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "malformed output", body: "echo 'not json'\n", want: "decode"},
		{name: "exit status", body: "echo 'broken spec' >&2\nexit 3\n", want: "broken spec"},
		{name: "missing shortname", body: `echo '{"level": 1}'` + "\n", want: "missing shortname"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			script := writeScript(t, tc.body)
			_, err := NewCommandReader(script, nil, 5).Read(context.Background(), "Overview.bs")
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCommandReaderTimeout(t *testing.T) {
	script := writeScript(t, "exec sleep 5\n")
	reader := NewCommandReader(script, nil, 0)
	reader.Timeout = 50 * time.Millisecond

	if _, err := reader.Read(context.Background(), "Overview.bs"); err == nil {
		t.Fatal("expected timeout error")
	}
}
