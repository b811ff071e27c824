// Package logging assembles structured slog loggers and formatting helpers used
// across specindex.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so build steps can tag log lines
// with the run ID, the spec folder being processed, and its shortname. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
