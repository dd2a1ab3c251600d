package plugin

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/manualworlds/onemorenight-options/pkg/logger"
	"github.com/manualworlds/onemorenight-options/pkg/options"
	"github.com/manualworlds/onemorenight-options/pkg/utils"
)

// Result is the outcome of loading one plugin
type Result struct {
	ID       uuid.UUID
	Plugin   string
	Manifest *utils.Manifest
	Options  *options.Container
	Groups   []options.Group
}

// Loader runs a plugin's hooks against the host's option machinery
type Loader struct {
	// Builtins returns the options present before any plugin hook runs
	Builtins func() options.Set
	Log      logger.Logger
}

// NewLoader creates a loader with the host's built-in options
func NewLoader() *Loader {
	return &Loader{
		Builtins: BuiltinOptions,
		Log:      logger.WithPrefix("loader"),
	}
}

// Load parses the plugin's own manifest and runs every load phase
func (l *Loader) Load(p Plugin) (*Result, error) {
	data, err := p.Manifest()
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest of %s: %w", p.Name(), err)
	}

	m, err := utils.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
	}

	return l.LoadWithManifest(p, m)
}

// LoadWithManifest runs every load phase using the given manifest
func (l *Loader) LoadWithManifest(p Plugin, m *utils.Manifest) (*Result, error) {
	id := uuid.New()
	log := l.Log.WithFields(map[string]interface{}{
		"plugin":  p.Name(),
		"load_id": id.String(),
	})

	derived, err := m.Definitions()
	if err != nil {
		return nil, fmt.Errorf("invalid manifest for %s: %w", p.Name(), err)
	}

	set := options.Set{}
	if l.Builtins != nil {
		set = l.Builtins()
	}

	log.Debugf("Defining options (%d built-in)", len(set))
	set = p.BeforeOptionsDefined(set)
	if set == nil {
		return nil, fmt.Errorf("plugin %s returned no options", p.Name())
	}

	// Derived options never replace what the plugin defined
	merged := 0
	for _, key := range derived.Keys() {
		if _, exists := set[key]; exists {
			log.Debugf("Keeping plugin definition of %s over derived one", key)
			continue
		}
		set.Put(derived[key])
		merged++
	}
	log.Debugf("Merged %d derived options", merged)

	container, err := options.NewContainer(set)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize options for %s: %w", p.Name(), err)
	}

	if err := p.AfterOptionsDefined(container); err != nil {
		return nil, fmt.Errorf("after options defined hook of %s failed: %w", p.Name(), err)
	}

	groups := l.initialGroups(m, container, log)
	groups = p.BeforeOptionGroupsCreated(groups)

	ordered := p.AfterOptionGroupsCreated(groups.Ordered(m.GroupOrder()))

	log.Infof("Loaded %d options in %d groups", container.Len(), len(ordered))

	return &Result{
		ID:       id,
		Plugin:   p.Name(),
		Manifest: m,
		Options:  container,
		Groups:   ordered,
	}, nil
}

func (l *Loader) initialGroups(m *utils.Manifest, c *options.Container, log logger.Logger) options.GroupMap {
	groups := make(options.GroupMap, len(m.Groups))
	for _, g := range m.Groups {
		for _, key := range g.Options {
			d, err := c.Hint(key)
			if err != nil {
				log.Warnf("Group %s lists %s: %v", g.Name, key, err)
				continue
			}
			groups[g.Name] = append(groups[g.Name], d)
		}
	}
	return groups
}
