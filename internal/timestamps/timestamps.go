// Package timestamps records when each shortname's current-work spec last
// changed, for consumers that publish "last updated" dates next to the index.
package timestamps

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"specindex/internal/catalog"
	"specindex/internal/fileutil"
)

// Collect maps every shortname to the modification time of its current-work
// record. Groups without a timestamp are omitted.
func Collect(c *catalog.Catalog) map[string]time.Time {
	out := make(map[string]time.Time, c.Len())
	for _, shortname := range c.Shortnames() {
		rec, ok := c.Current(shortname)
		if !ok || rec.Modified.IsZero() {
			continue
		}
		out[shortname] = rec.Modified.UTC().Truncate(time.Second)
	}
	return out
}

// Encode renders the map as indented JSON with RFC3339 values. Keys are
// sorted by encoding/json.
func Encode(stamps map[string]time.Time) ([]byte, error) {
	formatted := make(map[string]string, len(stamps))
	for name, ts := range stamps {
		formatted[name] = ts.UTC().Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(formatted, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode timestamps: %w", err)
	}
	return append(data, '\n'), nil
}

// Write replaces path with the timestamps of c.
func Write(path string, c *catalog.Catalog) (int, error) {
	stamps := Collect(c)
	data, err := Encode(stamps)
	if err != nil {
		return 0, err
	}
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write timestamps %s: %w", path, err)
	}
	return len(stamps), nil
}

// Read loads a timestamps file written by Write.
func Read(path string) (map[string]time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode timestamps %s: %w", path, err)
	}
	out := make(map[string]time.Time, len(raw))
	for name, value := range raw {
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("timestamp for %s: %w", name, err)
		}
		out[name] = ts
	}
	return out, nil
}
