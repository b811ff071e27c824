// Package buildreport renders the messages a spec processor printed while
// building one document into a standalone HTML page.
//
// The processor's JSON output is not always a complete array when a build
// aborts, so ParseMessages repairs a truncated array before decoding it.
package buildreport
