package onemorenight

import (
	"fmt"

	"github.com/manualworlds/onemorenight-options/pkg/options"
)

// hiddenKeys are derived options the generator still reads but players never set directly
var hiddenKeys = []string{
	"placeholder",
	"fragments",
	"coop",
	"fishsanity_achievements",
	"colored_fish",
	"character_fish",
	"rare_fish",
}

// HiddenKeys returns the derived options hidden by AfterOptionsDefined
func HiddenKeys() []string {
	return append([]string(nil), hiddenKeys...)
}

// BeforeOptionsDefined inserts the plugin's options, replacing any host
// definition with the same key.
func (p *Plugin) BeforeOptionsDefined(set options.Set) options.Set {
	if set == nil {
		set = options.Set{}
	}
	for _, d := range registered() {
		set.Put(d)
	}
	return set
}

// AfterOptionsDefined hides the derived options listed in hiddenKeys. Every one
// of them must already exist; the manifest is expected to derive them.
func (p *Plugin) AfterOptionsDefined(c *options.Container) error {
	for _, key := range hiddenKeys {
		if err := c.SetVisibility(key, options.VisibilityNone); err != nil {
			return fmt.Errorf("failed to hide %s: %w", key, err)
		}
	}
	return nil
}

// BeforeOptionGroupsCreated leaves the groups as the manifest defines them
func (p *Plugin) BeforeOptionGroupsCreated(groups options.GroupMap) options.GroupMap {
	return groups
}

// AfterOptionGroupsCreated leaves the final groups untouched
func (p *Plugin) AfterOptionGroupsCreated(groups []options.Group) []options.Group {
	return groups
}
