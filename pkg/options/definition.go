package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDefinition marks an authoring error in an option definition
var ErrInvalidDefinition = errors.New("invalid option definition")

// Choice is one named value of a choice option
type Choice struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// Definition describes a single player-configurable option.
//
// Toggles store their state as 0 (off) or 1 (on). Choices store the integer
// value of the selected name. Ranges store the integer itself.
type Definition struct {
	Key           string
	Kind          Kind
	DisplayName   string
	Documentation string
	Default       int

	// Choices lists the named values of a choice option in declaration order
	Choices []Choice
	// Aliases maps extra accepted names onto declared choice values
	Aliases map[string]int

	RangeStart int
	RangeEnd   int

	Visibility Visibility
}

// NewToggle creates a toggle that is off by default
func NewToggle(key, displayName, doc string) *Definition {
	return &Definition{
		Key:           key,
		Kind:          KindToggle,
		DisplayName:   displayName,
		Documentation: doc,
		Default:       0,
		Visibility:    VisibilityAll,
	}
}

// NewDefaultOnToggle creates a toggle that is on by default
func NewDefaultOnToggle(key, displayName, doc string) *Definition {
	return &Definition{
		Key:           key,
		Kind:          KindDefaultOnToggle,
		DisplayName:   displayName,
		Documentation: doc,
		Default:       1,
		Visibility:    VisibilityAll,
	}
}

// NewChoice creates a choice option. def must be one of the choice values.
func NewChoice(key, displayName, doc string, def int, choices ...Choice) *Definition {
	return &Definition{
		Key:           key,
		Kind:          KindChoice,
		DisplayName:   displayName,
		Documentation: doc,
		Default:       def,
		Choices:       choices,
		Visibility:    VisibilityAll,
	}
}

// NewRange creates an integer option bounded by [start, end]
func NewRange(key, displayName, doc string, start, end, def int) *Definition {
	return &Definition{
		Key:           key,
		Kind:          KindRange,
		DisplayName:   displayName,
		Documentation: doc,
		Default:       def,
		RangeStart:    start,
		RangeEnd:      end,
		Visibility:    VisibilityAll,
	}
}

// Validate checks the definition's default against its kind
func (d *Definition) Validate() error {
	if d.Key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidDefinition)
	}

	switch d.Kind {
	case KindToggle, KindDefaultOnToggle:
		if d.Default != 0 && d.Default != 1 {
			return fmt.Errorf("%w: %s: toggle default must be 0 or 1, got %d", ErrInvalidDefinition, d.Key, d.Default)
		}
	case KindChoice:
		if len(d.Choices) == 0 {
			return fmt.Errorf("%w: %s: choice needs at least one option", ErrInvalidDefinition, d.Key)
		}
		seenNames := make(map[string]bool, len(d.Choices))
		seenValues := make(map[int]bool, len(d.Choices))
		for _, c := range d.Choices {
			name := strings.ToLower(c.Name)
			if name == "" {
				return fmt.Errorf("%w: %s: choice name is required", ErrInvalidDefinition, d.Key)
			}
			if seenNames[name] {
				return fmt.Errorf("%w: %s: duplicate choice name %q", ErrInvalidDefinition, d.Key, c.Name)
			}
			if seenValues[c.Value] {
				return fmt.Errorf("%w: %s: duplicate choice value %d", ErrInvalidDefinition, d.Key, c.Value)
			}
			seenNames[name] = true
			seenValues[c.Value] = true
		}
		if !seenValues[d.Default] {
			return fmt.Errorf("%w: %s: default %d is not a declared choice", ErrInvalidDefinition, d.Key, d.Default)
		}
		for alias, value := range d.Aliases {
			if !seenValues[value] {
				return fmt.Errorf("%w: %s: alias %q points at undeclared value %d", ErrInvalidDefinition, d.Key, alias, value)
			}
		}
	case KindRange:
		if d.RangeStart > d.RangeEnd {
			return fmt.Errorf("%w: %s: range start %d is after end %d", ErrInvalidDefinition, d.Key, d.RangeStart, d.RangeEnd)
		}
		if d.Default < d.RangeStart || d.Default > d.RangeEnd {
			return fmt.Errorf("%w: %s: default %d outside [%d, %d]", ErrInvalidDefinition, d.Key, d.Default, d.RangeStart, d.RangeEnd)
		}
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidDefinition, d.Key, d.Kind)
	}

	return nil
}

// Hidden reports whether the option is surfaced nowhere
func (d *Definition) Hidden() bool {
	return d.Visibility == VisibilityNone
}

// Clone returns a deep copy of the definition
func (d *Definition) Clone() *Definition {
	c := *d
	if d.Choices != nil {
		c.Choices = append([]Choice(nil), d.Choices...)
	}
	if d.Aliases != nil {
		c.Aliases = make(map[string]int, len(d.Aliases))
		for k, v := range d.Aliases {
			c.Aliases[k] = v
		}
	}
	return &c
}

// ChoiceName returns the declared name for a choice value
func (d *Definition) ChoiceName(value int) (string, bool) {
	for _, c := range d.Choices {
		if c.Value == value {
			return c.Name, true
		}
	}
	return "", false
}

// ChoiceValue looks up a choice value by name or alias, ignoring case
func (d *Definition) ChoiceValue(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range d.Choices {
		if strings.ToLower(c.Name) == name {
			return c.Value, true
		}
	}
	for alias, value := range d.Aliases {
		if strings.ToLower(alias) == name {
			return value, true
		}
	}
	return 0, false
}

// ChoiceNames returns the declared choice names in order
func (d *Definition) ChoiceNames() []string {
	names := make([]string, len(d.Choices))
	for i, c := range d.Choices {
		names[i] = c.Name
	}
	return names
}

// FormatValue converts a stored value into its natural YAML form
func (d *Definition) FormatValue(value int) interface{} {
	switch d.Kind {
	case KindToggle, KindDefaultOnToggle:
		return value != 0
	case KindChoice:
		if name, ok := d.ChoiceName(value); ok {
			return name
		}
		return value
	default:
		return value
	}
}

// Describe returns a short summary of the bounds or choices
func (d *Definition) Describe() string {
	switch d.Kind {
	case KindToggle, KindDefaultOnToggle:
		return "on/off"
	case KindChoice:
		parts := make([]string, len(d.Choices))
		for i, c := range d.Choices {
			parts[i] = fmt.Sprintf("%s=%d", c.Name, c.Value)
		}
		return strings.Join(parts, ", ")
	case KindRange:
		return fmt.Sprintf("%d..%d", d.RangeStart, d.RangeEnd)
	default:
		return ""
	}
}
