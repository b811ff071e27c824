package catalog

import (
	"strings"
	"time"
)

// StatusCompleted is the work status of a finished spec revision.
const StatusCompleted = "completed"

// Source identifies where a record's metadata came from.
type Source string

const (
	SourceStructured Source = "structured"
	SourceHTML       Source = "html"
)

// Record is the metadata for one spec folder. Everything except CurrentWork
// is fixed once the record is resolved.
type Record struct {
	Dir         string    `json:"dir" yaml:"dir"`
	Shortname   string    `json:"shortname" yaml:"shortname"`
	Level       int       `json:"level" yaml:"level"`
	Title       string    `json:"title,omitempty" yaml:"title,omitempty"`
	HasTitle    bool      `json:"-" yaml:"-"`
	WorkStatus  string    `json:"workStatus" yaml:"workStatus"`
	CurrentWork bool      `json:"currentWork" yaml:"currentWork"`
	Modified    time.Time `json:"modified,omitzero" yaml:"modified,omitempty"`
	Source      Source    `json:"source" yaml:"source"`
}

// DisplayTitle returns the title, falling back to the folder name when the
// spec had none.
func (r Record) DisplayTitle() string {
	if r.HasTitle && strings.TrimSpace(r.Title) != "" {
		return r.Title
	}
	return r.Dir
}

// Completed reports whether the record's work status is "completed".
func (r Record) Completed() bool {
	return r.WorkStatus == StatusCompleted
}
