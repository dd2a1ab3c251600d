package plugin

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages available game plugins
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]func() Plugin
}

// NewRegistry creates a new plugin registry
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]func() Plugin),
	}
}

// Register adds a plugin factory to the registry
func (r *Registry) Register(name string, factory func() Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin %s already registered", name)
	}

	r.plugins[name] = factory
	return nil
}

// Get returns a new instance of the requested plugin
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.plugins[name]
	if !exists {
		return nil, fmt.Errorf("plugin %s not found", name)
	}

	return factory(), nil
}

// List returns all registered plugin names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global plugin registry
var DefaultRegistry = NewRegistry()
