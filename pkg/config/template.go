package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/manualworlds/onemorenight-options/pkg/options"
	"gopkg.in/yaml.v3"
)

// OtherGroup collects template options that belong to no group
const OtherGroup = "Other Options"

// RenderTemplate writes a player settings template holding the default of
// every option visible in templates. Documentation is written as comments.
func RenderTemplate(game string, c *options.Container, groups []options.Group) ([]byte, error) {
	section := &yaml.Node{Kind: yaml.MappingNode}
	placed := make(map[string]bool)

	visible := c.Visible(options.VisibilityTemplate)
	inTemplate := make(map[string]bool, len(visible))
	for _, d := range visible {
		inTemplate[d.Key] = true
	}

	addGroup := func(name string, defs []*options.Definition) {
		first := true
		for _, d := range defs {
			if placed[d.Key] || !inTemplate[d.Key] {
				continue
			}
			placed[d.Key] = true

			key := &yaml.Node{Kind: yaml.ScalarNode, Value: d.Key, HeadComment: optionComment(d)}
			if first {
				key.HeadComment = groupComment(name) + "\n" + key.HeadComment
				first = false
			}

			value := &yaml.Node{}
			// Encoding a bool, string or int never fails
			_ = value.Encode(d.FormatValue(d.Default))
			section.Content = append(section.Content, key, value)
		}
	}

	for _, g := range groups {
		addGroup(g.Name, g.Options)
	}
	addGroup(OtherGroup, visible)

	doc := &yaml.Node{Kind: yaml.MappingNode}
	addScalar(doc, "name", "Player{number}")
	doc.Content[0].HeadComment = "Player name. {number} is replaced by the player's slot number."
	addScalar(doc, "description", fmt.Sprintf("Default %s Template", game))
	addScalar(doc, "game", game)
	doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: game}, section)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	return buf.Bytes(), nil
}

func groupComment(name string) string {
	line := strings.Repeat("-", len(name)+4)
	return fmt.Sprintf("%s\n| %s |\n%s", line, name, line)
}

func optionComment(d *options.Definition) string {
	var b strings.Builder
	b.WriteString(d.DisplayName)
	for _, line := range strings.Split(strings.TrimSpace(d.Documentation), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	b.WriteString("\nAllowed: " + d.Describe())
	return b.String()
}
