package catalog

import (
	"cmp"
	"maps"
	"slices"
)

// Override pins the current work of one shortname family.
type Override struct {
	// Level selects the record with this level.
	Level int
	// Last selects the highest-level record regardless of work status.
	Last bool
}

// Exceptions is an immutable table of current-work overrides.
type Exceptions struct {
	overrides map[string]Override
}

// NewExceptions builds an exceptions table from pinned levels and families
// that always use their last record. An always-last entry wins over a level.
func NewExceptions(levels map[string]int, alwaysLast []string) Exceptions {
	overrides := make(map[string]Override, len(levels)+len(alwaysLast))
	for shortname, level := range levels {
		overrides[shortname] = Override{Level: level}
	}
	for _, shortname := range alwaysLast {
		overrides[shortname] = Override{Last: true}
	}
	return Exceptions{overrides: overrides}
}

// Lookup returns the override for shortname, if any.
func (e Exceptions) Lookup(shortname string) (Override, bool) {
	o, ok := e.overrides[shortname]
	return o, ok
}

// Shortnames returns the shortnames that carry an override, sorted.
func (e Exceptions) Shortnames() []string {
	return slices.Sorted(maps.Keys(e.overrides))
}

// SelectCurrentWork sorts every family by level and marks exactly one record
// per family as the current work.
func (c *Catalog) SelectCurrentWork(ex Exceptions) {
	for shortname, group := range c.groups {
		for i := range group {
			group[i].CurrentWork = false
		}
		if len(group) > 1 {
			slices.SortStableFunc(group, func(a, b Record) int {
				return cmp.Compare(a.Level, b.Level)
			})
		}
		override, ok := ex.Lookup(shortname)
		group[currentIndex(group, override, ok)].CurrentWork = true
	}
}

// currentIndex applies the selection rule to a group already sorted by level.
//
// Excepted families never fall back to the work-status heuristic: a pinned
// level that is missing from the group selects the last record.
func currentIndex(group []Record, override Override, excepted bool) int {
	last := len(group) - 1
	if len(group) == 1 {
		return 0
	}
	if excepted {
		if override.Last {
			return last
		}
		for i, rec := range group {
			if rec.Level == override.Level {
				return i
			}
		}
		return last
	}
	for i, rec := range group {
		if !rec.Completed() {
			return i
		}
	}
	return last
}
