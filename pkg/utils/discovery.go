package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manualworlds/onemorenight-options/pkg/logger"
	"github.com/manualworlds/onemorenight-options/pkg/options"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the file a game ships its derived options in
const ManifestFileName = "manual.yaml"

// Manifest describes the options and groups the host derives from a game's data
// files, before any plugin hook runs.
type Manifest struct {
	Game    string           `yaml:"game"`
	Creator string           `yaml:"creator"`
	Options []ManifestOption `yaml:"options"`
	Groups  []ManifestGroup  `yaml:"groups"`
}

// ManifestOption is a derived option definition
type ManifestOption struct {
	Key           string           `yaml:"key"`
	Kind          string           `yaml:"kind"`
	DisplayName   string           `yaml:"display_name"`
	Documentation string           `yaml:"documentation"`
	Default       *int             `yaml:"default,omitempty"`
	Choices       []options.Choice `yaml:"choices,omitempty"`
	Aliases       map[string]int   `yaml:"aliases,omitempty"`
	RangeStart    int              `yaml:"range_start,omitempty"`
	RangeEnd      int              `yaml:"range_end,omitempty"`
}

// ManifestGroup lists option keys shown together
type ManifestGroup struct {
	Name    string   `yaml:"name"`
	Options []string `yaml:"options"`
}

// GameName returns the name players put in their settings files
func (m *Manifest) GameName() string {
	return fmt.Sprintf("Manual_%s_%s", m.Game, m.Creator)
}

// Definitions converts the derived options into validated definitions
func (m *Manifest) Definitions() (options.Set, error) {
	set := make(options.Set, len(m.Options))
	for _, mo := range m.Options {
		d, err := mo.Definition()
		if err != nil {
			return nil, err
		}
		if _, exists := set[d.Key]; exists {
			return nil, fmt.Errorf("duplicate manifest option %s", d.Key)
		}
		set.Put(d)
	}
	return set, nil
}

// GroupOrder returns the group names in manifest order
func (m *Manifest) GroupOrder() []string {
	names := make([]string, len(m.Groups))
	for i, g := range m.Groups {
		names[i] = g.Name
	}
	return names
}

// Definition builds the option definition described by the manifest entry
func (mo ManifestOption) Definition() (*options.Definition, error) {
	kind, err := options.ParseKind(mo.Kind)
	if err != nil {
		return nil, fmt.Errorf("option %s: %w", mo.Key, err)
	}

	displayName := mo.DisplayName
	if displayName == "" {
		displayName = mo.Key
	}

	var d *options.Definition
	switch kind {
	case options.KindToggle:
		d = options.NewToggle(mo.Key, displayName, mo.Documentation)
	case options.KindDefaultOnToggle:
		d = options.NewDefaultOnToggle(mo.Key, displayName, mo.Documentation)
	case options.KindChoice:
		def := 0
		if len(mo.Choices) > 0 {
			def = mo.Choices[0].Value
		}
		d = options.NewChoice(mo.Key, displayName, mo.Documentation, def, mo.Choices...)
		d.Aliases = mo.Aliases
	case options.KindRange:
		d = options.NewRange(mo.Key, displayName, mo.Documentation, mo.RangeStart, mo.RangeEnd, mo.RangeStart)
	}

	if mo.Default != nil {
		d.Default = *mo.Default
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseManifest decodes and validates a manifest
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.Game == "" {
		return nil, fmt.Errorf("manifest game name is required")
	}
	if m.Creator == "" {
		return nil, fmt.Errorf("manifest creator is required")
	}

	if _, err := m.Definitions(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	return &m, nil
}

// LoadManifest loads a manifest from a file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// DiscoverManifests finds every manual.yaml below root
func DiscoverManifests(root string) (map[string]*Manifest, error) {
	found := make(map[string]*Manifest)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Name() == ManifestFileName {
			m, err := LoadManifest(path)
			if err != nil {
				// Log error but continue scanning
				logger.Warnf("Failed to load %s: %v", path, err)
				return nil
			}
			found[filepath.Dir(path)] = m
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan for manifests: %w", err)
	}

	return found, nil
}
