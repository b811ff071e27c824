package alias

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"specindex/internal/fileutil"
)

var redirectTemplate = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<meta charset="UTF-8" />
<meta http-equiv="refresh" content="0; URL={{.Href}}" />
<style>
  :root {
    color-scheme: light dark;
  }
</style>
<p>Redirecting to <a href="{{.Href}}">{{.Label}}</a>...</p>
`))

// RedirectPage renders a minimal page that immediately redirects to href.
func RedirectPage(href, label string) []byte {
	var buf bytes.Buffer
	data := struct{ Href, Label string }{Href: href, Label: label}
	if err := redirectTemplate.Execute(&buf, data); err != nil {
		// The template is static and the data is two strings.
		panic(fmt.Sprintf("render redirect page: %v", err))
	}
	return buf.Bytes()
}

// WriteStandaloneRedirect creates outputDir/<folder>/index.html redirecting to
// base/<folder>/. The folder must not exist yet.
func WriteStandaloneRedirect(outputDir, base, folder string) (string, error) {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return "", errors.New("folder name is required")
	}
	if strings.ContainsAny(folder, `/\`) || folder == "." || folder == ".." {
		return "", fmt.Errorf("folder %q must be a single path element", folder)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create redirect output: %w", err)
	}
	dir := filepath.Join(outputDir, folder)
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("create redirect folder: %w", err)
	}
	href := strings.TrimRight(base, "/") + "/" + folder + "/"
	index := filepath.Join(dir, "index.html")
	if err := fileutil.WriteExclusive(index, RedirectPage(href, folder), 0o644); err != nil {
		return "", fmt.Errorf("write redirect: %w", err)
	}
	return index, nil
}
