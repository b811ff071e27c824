// Package build runs one index build: it scans the spec root, selects the
// current work of every shortname family, materializes the aliases, and
// writes the index page and optional timestamps file.
//
// A build is sequential and aborts on the first error. Concurrent builds of
// the same root are serialized with a file lock.
package build
