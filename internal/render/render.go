// Package render produces the static directory page for a spec catalog.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"specindex/internal/catalog"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// IndexOptions controls the page chrome.
type IndexOptions struct {
	Title string
}

// Group is one list entry of the index page.
type Group struct {
	Shortname string
	// Single is set for families with one member.
	Single  *catalog.Record
	Members []catalog.Record
}

type indexData struct {
	Title  string
	Groups []Group
}

// Groups lays out the catalog in shortname order, members in level order.
func Groups(c *catalog.Catalog) []Group {
	names := c.Shortnames()
	groups := make([]Group, 0, len(names))
	for _, name := range names {
		members := c.Members(name)
		g := Group{Shortname: name, Members: members}
		if len(members) == 1 {
			g.Single = &members[0]
		}
		groups = append(groups, g)
	}
	return groups
}

// Index writes the directory page for c to w.
func Index(w io.Writer, c *catalog.Catalog, opts IndexOptions) error {
	data := indexData{Title: opts.Title, Groups: Groups(c)}
	if err := indexTemplate.ExecuteTemplate(w, "index.html.tmpl", data); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}
