package onemorenight

import (
	_ "embed"

	"github.com/manualworlds/onemorenight-options/pkg/options"
	"github.com/manualworlds/onemorenight-options/pkg/plugin"
)

// Name is the registry name of the plugin
const Name = "onemorenight"

//go:embed manual.yaml
var manifest []byte

// Plugin contributes the One More Night options
type Plugin struct{}

// New creates the plugin
func New() plugin.Plugin {
	return &Plugin{}
}

// Name returns the plugin name
func (p *Plugin) Name() string {
	return Name
}

// Manifest returns the embedded game manifest
func (p *Plugin) Manifest() ([]byte, error) {
	return manifest, nil
}

func init() {
	if err := plugin.DefaultRegistry.Register(Name, New); err != nil {
		panic(err)
	}
}

// Declared returns every option the plugin declares
func (p *Plugin) Declared() []*options.Definition {
	return Declared()
}
