// Package main hosts the specindex CLI entrypoint and command graph.
//
// The Cobra command tree wraps the build pipeline (build, list), the
// standalone helpers that used to live in ad-hoc scripts (redirect, report),
// and environment diagnostics (check, config). Configuration resolution and
// logger construction are centralized in commandContext so subcommands only
// deal with presentation.
package main
