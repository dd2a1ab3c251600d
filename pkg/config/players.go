package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/manualworlds/onemorenight-options/pkg/options"
	"gopkg.in/yaml.v3"
)

// PlayerSettings is one player's settings file. The options live under a key
// named after the game, as the host expects.
type PlayerSettings struct {
	Name        string
	Game        string
	Description string
	Options     map[string]interface{}
}

// NewPlayerSettings formats resolved values into a settings file
func NewPlayerSettings(name, game string, c *options.Container, values options.Values) (*PlayerSettings, error) {
	settings := &PlayerSettings{
		Name:    name,
		Game:    game,
		Options: make(map[string]interface{}, len(values)),
	}

	for key, value := range values {
		d, err := c.Hint(key)
		if err != nil {
			return nil, err
		}
		settings.Options[key] = d.FormatValue(value)
	}

	return settings, nil
}

// MarshalYAML writes the fixed keys first, then the game section with sorted options
func (p PlayerSettings) MarshalYAML() (interface{}, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	addScalar(doc, "name", p.Name)
	if p.Description != "" {
		addScalar(doc, "description", p.Description)
	}
	addScalar(doc, "game", p.Game)

	section := &yaml.Node{Kind: yaml.MappingNode}
	keys := make([]string, 0, len(p.Options))
	for k := range p.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		value := &yaml.Node{}
		if err := value.Encode(p.Options[k]); err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", k, err)
		}
		section.Content = append(section.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, value)
	}

	doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Game}, section)
	return doc, nil
}

// UnmarshalYAML reads the fixed keys and the section named by game
func (p *PlayerSettings) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]interface{}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	p.Name = stringField(raw, "name")
	p.Game = stringField(raw, "game")
	p.Description = stringField(raw, "description")

	if p.Game == "" {
		return fmt.Errorf("player settings have no game")
	}

	section, ok := raw[p.Game]
	if !ok || section == nil {
		p.Options = map[string]interface{}{}
		return nil
	}

	opts, ok := section.(map[string]interface{})
	if !ok {
		return fmt.Errorf("settings for %s must be a mapping", p.Game)
	}
	p.Options = opts
	return nil
}

func addScalar(n *yaml.Node, key, value string) {
	n.Content = append(n.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}

func stringField(raw map[string]interface{}, key string) string {
	if v, ok := raw[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// DefaultPlayersDir returns the directory player settings are saved in
func DefaultPlayersDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".manual-opts", "players"), nil
}

// LoadPlayerSettings loads a player settings file
func LoadPlayerSettings(path string) (*PlayerSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read player settings: %w", err)
	}

	var settings PlayerSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse player settings: %w", err)
	}

	return &settings, nil
}

// SavePlayerSettings writes the settings to dir/<name>.yaml and returns the path
func SavePlayerSettings(dir string, settings *PlayerSettings) (string, error) {
	if settings.Name == "" {
		return "", fmt.Errorf("player name is required")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create players directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("failed to marshal player settings: %w", err)
	}

	path := filepath.Join(dir, fileName(settings.Name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write player settings: %w", err)
	}

	return path, nil
}

// ListPlayerSettings returns the settings files found in dir
func ListPlayerSettings(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read players directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func fileName(player string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, player)
	return name + ".yaml"
}
