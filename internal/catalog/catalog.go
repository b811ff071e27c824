package catalog

import (
	"slices"
	"sort"
)

// Catalog buckets records by shortname. Within a bucket, records keep scan
// order until SelectCurrentWork sorts them by level.
type Catalog struct {
	groups map[string][]Record
	count  int
}

// Group buckets records by their (already normalized) shortname.
func Group(records []Record) *Catalog {
	c := &Catalog{groups: make(map[string][]Record)}
	for _, rec := range records {
		c.groups[rec.Shortname] = append(c.groups[rec.Shortname], rec)
		c.count++
	}
	return c
}

// Shortnames returns the family keys in sorted order.
func (c *Catalog) Shortnames() []string {
	names := make([]string, 0, len(c.groups))
	for name := range c.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Members returns a copy of the records sharing shortname.
func (c *Catalog) Members(shortname string) []Record {
	return slices.Clone(c.groups[shortname])
}

// Current returns the current-work record of a family.
func (c *Catalog) Current(shortname string) (Record, bool) {
	for _, rec := range c.groups[shortname] {
		if rec.CurrentWork {
			return rec, true
		}
	}
	return Record{}, false
}

// Len returns the number of families.
func (c *Catalog) Len() int {
	return len(c.groups)
}

// Records returns the total number of records.
func (c *Catalog) Records() int {
	return c.count
}
