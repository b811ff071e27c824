// Package preflight provides readiness checks for the filesystem paths and
// external programs a build depends on.
//
// The CLI "specindex check" command runs RunAll and CheckSystemDeps and
// renders each result as a status line. Checks never modify the filesystem:
// a missing output directory is reported as created-on-build rather than
// created here.
package preflight
