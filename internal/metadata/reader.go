package metadata

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"specindex/internal/config"
)

// Fields is the raw metadata a Reader extracts from a structured source.
type Fields struct {
	Shortname  string
	Level      int
	Title      string
	HasTitle   bool
	WorkStatus string
}

// Reader extracts metadata from one structured spec source document.
type Reader interface {
	Read(ctx context.Context, path string) (Fields, error)
}

// NewReader returns the structured metadata reader selected by cfg.
func NewReader(cfg *config.Config) (Reader, error) {
	switch cfg.Metadata.Reader {
	case config.MetadataReaderNative, "":
		return BlockReader{}, nil
	case config.MetadataReaderCommand:
		return NewCommandReader(cfg.Metadata.Command, cfg.Metadata.Args, cfg.Metadata.TimeoutSeconds), nil
	default:
		return nil, fmt.Errorf("unsupported metadata reader %q", cfg.Metadata.Reader)
	}
}

// ParseLevel converts a metadata level value. Empty and "none" mean unleveled.
func ParseLevel(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return 0, nil
	}
	level, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid level %q", value)
	}
	return level, nil
}

func normalizeStatus(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
