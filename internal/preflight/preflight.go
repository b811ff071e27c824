package preflight

import (
	"path/filepath"
	"strings"

	"specindex/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the filesystem checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	// The spec root is only read unless it is also the output directory.
	var results []Result
	if cfg.Paths.Output == cfg.Paths.Root {
		results = append(results, CheckDirectoryAccess("Spec root", cfg.Paths.Root))
	} else {
		results = append(results, CheckDirectoryReadable("Spec root", cfg.Paths.Root))
		results = append(results, CheckOutputDirectory("Output directory", cfg.Paths.Output))
	}

	if path := strings.TrimSpace(cfg.Paths.TimestampsFile); path != "" {
		results = append(results, CheckOutputDirectory("Timestamps directory", filepath.Dir(path)))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
