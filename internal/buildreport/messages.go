package buildreport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Message is one diagnostic emitted by the spec processor.
type Message struct {
	LineNum LineNumber `json:"lineNum"`
	Type    string     `json:"messageType"`
	Text    string     `json:"text"`
}

// LineNumber is a source location that may be a number, a string such as
// "12:4", or absent.
type LineNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (l *LineNumber) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*l = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		s, err := strconv.Unquote(string(trimmed))
		if err != nil {
			return fmt.Errorf("line number: %w", err)
		}
		*l = LineNumber(s)
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("line number: %w", err)
		}
		*l = LineNumber(n.String())
	}
	return nil
}

// ParseMessages decodes the processor's JSON message array. Empty input means
// no messages. A truncated array (missing "]", possibly after a trailing
// comma) is closed before decoding.
func ParseMessages(raw []byte) ([]Message, error) {
	input := strings.TrimRightFunc(string(raw), isSpace)
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	if !strings.HasSuffix(input, "]") {
		input = strings.TrimSuffix(input, ",")
		input += "]"
	}
	var messages []Message
	if err := json.Unmarshal([]byte(input), &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
