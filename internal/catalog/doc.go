// Package catalog holds the spec data model, groups spec records into
// shortname families, and decides which revision of each family is the
// current work.
//
// The current-work rule is a heuristic driven by an explicit exceptions table.
// It mirrors the conventions of the existing drafts corpus, including its
// known imperfections, so do not "fix" it without agreeing on the new
// conventions with the people publishing the drafts.
package catalog
