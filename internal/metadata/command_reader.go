package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// CommandReader runs an external program once per structured source and
// decodes a JSON object from its stdout:
//
//	{"shortname": "css-grid", "level": 2, "title": "...", "workStatus": "revising"}
//
// The "{path}" placeholder in Args is replaced with the source path.
type CommandReader struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// NewCommandReader builds a CommandReader with a timeout in seconds.
func NewCommandReader(command string, args []string, timeoutSeconds int) *CommandReader {
	return &CommandReader{
		Command: command,
		Args:    append([]string(nil), args...),
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

type commandOutput struct {
	Shortname  string      `json:"shortname"`
	Level      flexibleInt `json:"level"`
	Title      *string     `json:"title"`
	WorkStatus string      `json:"workStatus"`
}

// flexibleInt accepts a JSON number, numeric string, "none", or null.
type flexibleInt int

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(trimmed); err == nil {
		level, err := ParseLevel(unquoted)
		if err != nil {
			return err
		}
		*f = flexibleInt(level)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid level %s", trimmed)
	}
	*f = flexibleInt(n)
	return nil
}

// Read implements Reader.
func (r *CommandReader) Read(ctx context.Context, path string) (Fields, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	args := make([]string, len(r.Args))
	for i, arg := range r.Args {
		args[i] = strings.ReplaceAll(arg, "{path}", path)
	}

	cmd := exec.CommandContext(ctx, r.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return Fields{}, fmt.Errorf("run %s: %w: %s", r.Command, err, detail)
		}
		return Fields{}, fmt.Errorf("run %s: %w", r.Command, err)
	}

	var out commandOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return Fields{}, fmt.Errorf("decode %s output: %w", r.Command, err)
	}
	shortname := strings.ToLower(strings.TrimSpace(out.Shortname))
	if shortname == "" {
		return Fields{}, fmt.Errorf("%s output is missing shortname", r.Command)
	}
	fields := Fields{
		Shortname:  shortname,
		Level:      int(out.Level),
		WorkStatus: normalizeStatus(out.WorkStatus),
	}
	if out.Title != nil {
		fields.Title, fields.HasTitle = *out.Title, true
	}
	return fields, nil
}
