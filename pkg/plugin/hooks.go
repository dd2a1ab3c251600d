package plugin

import "github.com/manualworlds/onemorenight-options/pkg/options"

// Hooks is the set of extension points the host calls while loading a plugin.
// The loader calls each hook exactly once, in the order they are declared here.
type Hooks interface {
	// BeforeOptionsDefined receives the host's built-in options and returns the
	// set with the plugin's own definitions inserted. Existing keys may be replaced.
	BeforeOptionsDefined(set options.Set) options.Set

	// AfterOptionsDefined receives the finalized options. Only display metadata
	// such as visibility may change here; an error aborts the load.
	AfterOptionsDefined(c *options.Container) error

	// BeforeOptionGroupsCreated may place options into new or existing groups
	BeforeOptionGroupsCreated(groups options.GroupMap) options.GroupMap

	// AfterOptionGroupsCreated may inspect or reorder the final groups
	AfterOptionGroupsCreated(groups []options.Group) []options.Group
}

// Plugin is a game that contributes options to the host
type Plugin interface {
	Hooks

	// Name returns the registry name of the plugin
	Name() string

	// Manifest returns the raw game manifest the host derives options from
	Manifest() ([]byte, error)
}

// BaseHooks passes every argument through unchanged. Embed it to implement
// only the hooks a plugin needs.
type BaseHooks struct{}

func (BaseHooks) BeforeOptionsDefined(set options.Set) options.Set { return set }

func (BaseHooks) AfterOptionsDefined(*options.Container) error { return nil }

func (BaseHooks) BeforeOptionGroupsCreated(groups options.GroupMap) options.GroupMap {
	return groups
}

func (BaseHooks) AfterOptionGroupsCreated(groups []options.Group) []options.Group { return groups }

// Declarer is implemented by plugins that declare definitions beyond the ones
// their hooks register, so tooling can still show them.
type Declarer interface {
	Declared() []*options.Definition
}
