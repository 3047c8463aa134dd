package derive

import (
	"sort"
	"strings"
)

// Reference is a flat reference entity: categories, companies and profiles
// all reduce to an identifier plus a display name.
type Reference interface {
	Key() int
	Label() string
}

// LookupTable builds the id->name translation map used to render foreign-key
// style references as human-readable labels. No deduplication happens here;
// every input identifier gets an entry.
func LookupTable[T Reference](refs []T) map[int]string {
	table := make(map[int]string, len(refs))
	for _, r := range refs {
		table[r.Key()] = r.Label()
	}
	return table
}

// Option is one entry of a deduplicated dropdown list.
type Option struct {
	ID   int
	Name string
}

// DedupeByName collapses reference entities whose names differ only by
// accents, case or surrounding whitespace into a single option per canonical
// name, keeping the first identifier encountered and the trimmed display
// name. The result is sorted by name.
func DedupeByName[T Reference](refs []T) []Option {
	seen := make(map[string]bool, len(refs))
	options := make([]Option, 0, len(refs))

	for _, r := range refs {
		canonical := Normalize(r.Label())
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		options = append(options, Option{
			ID:   r.Key(),
			Name: strings.TrimSpace(r.Label()),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})
	return options
}
