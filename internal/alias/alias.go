package alias

import (
	"sort"

	"specindex/internal/catalog"
)

// Alias maps a shortname path to the folder it should lead to.
type Alias struct {
	Name   string `json:"name" yaml:"name"`
	Target string `json:"target" yaml:"target"`
}

// Plan lists the aliases a catalog needs: one for every family whose
// current-work folder is not named after the shortname, plus snapshotRoot
// pointing at the snapshot family's current work.
func Plan(c *catalog.Catalog, snapshotFamily, snapshotRoot string) []Alias {
	var aliases []Alias
	for _, shortname := range c.Shortnames() {
		current, ok := c.Current(shortname)
		if !ok {
			continue
		}
		if shortname != current.Dir {
			aliases = append(aliases, Alias{Name: shortname, Target: current.Dir})
		}
		if shortname == snapshotFamily && snapshotRoot != "" && snapshotRoot != current.Dir {
			aliases = append(aliases, Alias{Name: snapshotRoot, Target: current.Dir})
		}
	}
	sort.SliceStable(aliases, func(i, j int) bool { return aliases[i].Name < aliases[j].Name })
	return aliases
}
