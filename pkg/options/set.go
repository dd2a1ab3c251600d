package options

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownOption is returned when a key is not present in a container
var ErrUnknownOption = errors.New("unknown option")

// Set maps option keys to their definitions. Writing an existing key replaces it.
type Set map[string]*Definition

// Put stores the definition under its own key
func (s Set) Put(d *Definition) {
	s[d.Key] = d
}

// Keys returns the keys in sorted order
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone deep-copies every definition
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, d := range s {
		out[k] = d.Clone()
	}
	return out
}

// Container holds the finalized options after every definition has been
// collected. It owns private copies, so changing display metadata here never
// touches the declared definitions.
type Container struct {
	keys  []string
	hints map[string]*Definition
}

// NewContainer validates and copies every definition of the set
func NewContainer(s Set) (*Container, error) {
	c := &Container{
		hints: make(map[string]*Definition, len(s)),
	}
	for _, key := range s.Keys() {
		d := s[key]
		if d == nil {
			return nil, fmt.Errorf("%w: %s: nil definition", ErrInvalidDefinition, key)
		}
		if d.Key != key {
			return nil, fmt.Errorf("%w: stored under %q but keyed %q", ErrInvalidDefinition, key, d.Key)
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		c.keys = append(c.keys, key)
		c.hints[key] = d.Clone()
	}
	return c, nil
}

// Hint returns the mutable definition for key
func (c *Container) Hint(key string) (*Definition, error) {
	d, ok := c.hints[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
	return d, nil
}

// Has reports whether key is present
func (c *Container) Has(key string) bool {
	_, ok := c.hints[key]
	return ok
}

// SetVisibility changes the visibility of an existing option
func (c *Container) SetVisibility(key string, v Visibility) error {
	d, err := c.Hint(key)
	if err != nil {
		return err
	}
	d.Visibility = v
	return nil
}

// SetDisplayName changes the label of an existing option
func (c *Container) SetDisplayName(key, name string) error {
	d, err := c.Hint(key)
	if err != nil {
		return err
	}
	d.DisplayName = name
	return nil
}

// Keys returns every option key in sorted order
func (c *Container) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Definitions returns every definition in key order
func (c *Container) Definitions() []*Definition {
	defs := make([]*Definition, len(c.keys))
	for i, key := range c.keys {
		defs[i] = c.hints[key]
	}
	return defs
}

// Visible returns the definitions carrying every flag in v
func (c *Container) Visible(v Visibility) []*Definition {
	var defs []*Definition
	for _, key := range c.keys {
		d := c.hints[key]
		if d.Visibility != VisibilityNone && d.Visibility.Has(v) {
			defs = append(defs, d)
		}
	}
	return defs
}

// Len returns the number of options
func (c *Container) Len() int {
	return len(c.keys)
}
