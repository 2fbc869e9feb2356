package domain

import "sort"

// CrosswalkEntry maps one source characteristic name to the harmonized
// parameter name it should be reported under.
type CrosswalkEntry struct {
	CharacteristicName string `json:"characteristic_name"`
	Parameter          string `json:"parameter"`
}

// Crosswalk is a lookup table from characteristic names to harmonized
// parameter names. A well-formed crosswalk lists each characteristic
// name exactly once; duplicated names make a left join fan out, which
// the cleaning orchestrator detects and rejects.
type Crosswalk struct {
	Entries []CrosswalkEntry `json:"entries"`
}

// Len returns the number of entries in the crosswalk.
func (c Crosswalk) Len() int {
	return len(c.Entries)
}

// Index builds a characteristic-name lookup. Every entry contributes a
// parameter, so a duplicated name yields multiple parameters and the
// caller can observe the fan-out a join against this crosswalk would
// produce.
func (c Crosswalk) Index() map[string][]string {
	idx := make(map[string][]string, len(c.Entries))
	for _, e := range c.Entries {
		idx[e.CharacteristicName] = append(idx[e.CharacteristicName], e.Parameter)
	}
	return idx
}

// DuplicatedNames returns the characteristic names that appear in more
// than one entry, sorted for stable reporting.
func (c Crosswalk) DuplicatedNames() []string {
	counts := make(map[string]int, len(c.Entries))
	for _, e := range c.Entries {
		counts[e.CharacteristicName]++
	}
	var names []string
	for name, n := range counts {
		if n > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
