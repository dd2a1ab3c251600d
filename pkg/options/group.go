package options

import "sort"

// Group is a named, ordered collection of options used for presentation only
type Group struct {
	Name    string
	Options []*Definition
}

// Keys returns the option keys of the group in order
func (g Group) Keys() []string {
	keys := make([]string, len(g.Options))
	for i, d := range g.Options {
		keys[i] = d.Key
	}
	return keys
}

// GroupMap maps group names to their ordered options
type GroupMap map[string][]*Definition

// Ordered converts the map into a slice. Names listed in order come first in
// that order; any remaining groups follow alphabetically. Empty groups are dropped.
func (m GroupMap) Ordered(order []string) []Group {
	seen := make(map[string]bool, len(m))
	groups := make([]Group, 0, len(m))

	for _, name := range order {
		if seen[name] {
			continue
		}
		seen[name] = true
		if opts := m[name]; len(opts) > 0 {
			groups = append(groups, Group{Name: name, Options: opts})
		}
	}

	var rest []string
	for name := range m {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		if opts := m[name]; len(opts) > 0 {
			groups = append(groups, Group{Name: name, Options: opts})
		}
	}

	return groups
}
