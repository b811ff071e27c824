package buildreport

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"
	"time"
)

//go:embed templates/build-output.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/build-output.html.tmpl"))

// Report is the input of Render.
type Report struct {
	SpecFile  string
	Messages  []Message
	Generated time.Time
}

// TypeCount is the number of messages of one type.
type TypeCount struct {
	Type  string
	Count int
}

// Counts tallies messages by type, most frequent first.
func (r Report) Counts() []TypeCount {
	tally := map[string]int{}
	for _, m := range r.Messages {
		tally[m.Type]++
	}
	counts := make([]TypeCount, 0, len(tally))
	for typ, n := range tally {
		counts = append(counts, TypeCount{Type: typ, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Type < counts[j].Type
	})
	return counts
}

// Failed reports whether any message is fatal.
func (r Report) Failed() bool {
	for _, m := range r.Messages {
		if m.Type == "fatal" || m.Type == "failure" {
			return true
		}
	}
	return false
}

// Render writes the report page to w.
func Render(w io.Writer, r Report) error {
	if r.Generated.IsZero() {
		r.Generated = time.Now()
	}
	r.Generated = r.Generated.UTC()
	if err := reportTemplate.ExecuteTemplate(w, "build-output.html.tmpl", r); err != nil {
		return fmt.Errorf("render build report: %w", err)
	}
	return nil
}
