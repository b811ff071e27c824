package metadata

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	metadataOpenPattern = regexp.MustCompile(`(?i)<pre\b[^>]*\bclass\s*=\s*["']?[^"'>]*\bmetadata\b[^>]*>`)
	preClosePattern     = regexp.MustCompile(`(?i)</pre\s*>`)
	h1OpenPattern       = regexp.MustCompile(`(?i)<h1\b`)
	h1Pattern           = regexp.MustCompile(`(?is)<h1\b[^>]*>(.*?)</h1\s*>`)
)

// BlockReader parses <pre class="metadata"> blocks of a structured source.
// Each line is "Key: value"; indented lines continue the previous value. Keys
// match case-insensitively and later blocks override earlier ones.
type BlockReader struct{}

// Read implements Reader.
func (BlockReader) Read(ctx context.Context, path string) (Fields, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fields{}, fmt.Errorf("open spec source: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	values := map[string]string{}
	var (
		inBlock  bool
		sawBlock bool
		lastKey  string
		h1       string
		inH1     bool
		h1Buf    strings.Builder
	)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return Fields{}, err
		}
		line := scanner.Text()
		if !inBlock {
			if loc := metadataOpenPattern.FindStringIndex(line); loc != nil {
				inBlock, sawBlock, lastKey = true, true, ""
				line = line[loc[1]:]
			} else {
				if h1 == "" {
					h1, inH1 = scanHeading(&h1Buf, line, inH1)
				}
				continue
			}
		}
		if loc := preClosePattern.FindStringIndex(line); loc != nil {
			lastKey = parseMetadataLine(values, line[:loc[0]], lastKey)
			inBlock = false
			continue
		}
		lastKey = parseMetadataLine(values, line, lastKey)
	}
	if err := scanner.Err(); err != nil {
		return Fields{}, fmt.Errorf("read spec source: %w", err)
	}
	if !sawBlock {
		return Fields{}, errors.New("no metadata block found")
	}

	shortname := strings.ToLower(strings.TrimSpace(values["shortname"]))
	if shortname == "" {
		return Fields{}, errors.New("metadata is missing Shortname")
	}
	level, err := ParseLevel(values["level"])
	if err != nil {
		return Fields{}, err
	}
	fields := Fields{
		Shortname:  shortname,
		Level:      level,
		WorkStatus: normalizeStatus(values["work status"]),
	}
	if title, ok := values["title"]; ok && title != "" {
		fields.Title, fields.HasTitle = title, true
	} else if h1 != "" {
		fields.Title, fields.HasTitle = h1, true
	}
	return fields, nil
}

// scanHeading feeds one line into the pending <h1> buffer. A heading may span
// lines, so text is accumulated from the opening tag until the closing tag
// shows up; the result has its whitespace collapsed.
func scanHeading(buf *strings.Builder, line string, open bool) (string, bool) {
	if !open {
		loc := h1OpenPattern.FindStringIndex(line)
		if loc == nil {
			return "", false
		}
		buf.Reset()
		line = line[loc[0]:]
	} else {
		buf.WriteByte('\n')
	}
	buf.WriteString(line)
	m := h1Pattern.FindStringSubmatch(buf.String())
	if m == nil {
		return "", true
	}
	buf.Reset()
	return strings.Join(strings.Fields(m[1]), " "), false
}

// parseMetadataLine stores one metadata line and returns the key that a
// following continuation line would extend.
func parseMetadataLine(values map[string]string, line, lastKey string) string {
	if strings.TrimSpace(line) == "" {
		return lastKey
	}
	if (line[0] == ' ' || line[0] == '\t') && lastKey != "" {
		values[lastKey] = strings.TrimSpace(values[lastKey] + " " + strings.TrimSpace(line))
		return lastKey
	}
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return lastKey
	}
	key = strings.ToLower(strings.Join(strings.Fields(key), " "))
	values[key] = strings.TrimSpace(value)
	return key
}
