package options

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when a player value does not fit its option
var ErrInvalidValue = errors.New("invalid option value")

// Values holds the resolved value of every option for one player
type Values map[string]int

// Resolve parses raw player settings against the container. Keys missing from
// raw take the option default; keys unknown to the container are rejected.
func Resolve(c *Container, raw map[string]interface{}) (Values, error) {
	for key := range raw {
		if !c.Has(key) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOption, key)
		}
	}

	values := make(Values, c.Len())
	for _, d := range c.Definitions() {
		v, ok := raw[d.Key]
		if !ok || v == nil {
			values[d.Key] = d.Default
			continue
		}
		parsed, err := d.ParseValue(v)
		if err != nil {
			return nil, err
		}
		values[d.Key] = parsed
	}

	return values, nil
}

// ParseValue converts a raw YAML, flag or environment value into the stored integer
func (d *Definition) ParseValue(v interface{}) (int, error) {
	switch d.Kind {
	case KindToggle, KindDefaultOnToggle:
		return d.parseToggle(v)
	case KindChoice:
		return d.parseChoice(v)
	case KindRange:
		return d.parseRange(v)
	default:
		return 0, fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidValue, d.Key, d.Kind)
	}
}

func (d *Definition) parseToggle(v interface{}) (int, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case int:
		if val == 0 || val == 1 {
			return val, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "on", "yes", "1":
			return 1, nil
		case "false", "off", "no", "0":
			return 0, nil
		}
	}
	return 0, fmt.Errorf("%w: %s: expected on/off, got %v", ErrInvalidValue, d.Key, v)
}

func (d *Definition) parseChoice(v interface{}) (int, error) {
	var value int
	switch val := v.(type) {
	case string:
		if n, ok := d.ChoiceValue(val); ok {
			return n, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %q is not one of %s", ErrInvalidValue, d.Key, val, strings.Join(d.ChoiceNames(), ", "))
		}
		value = n
	case int:
		value = val
	case float64:
		n, err := d.wholeNumber(val)
		if err != nil {
			return 0, err
		}
		value = n
	case bool:
		// YAML 1.1 readers turn "on"/"off" choice names into booleans
		if n, ok := d.ChoiceValue(strconv.FormatBool(val)); ok {
			return n, nil
		}
		return 0, fmt.Errorf("%w: %s: expected a choice name, got %v", ErrInvalidValue, d.Key, val)
	default:
		return 0, fmt.Errorf("%w: %s: expected a choice name, got %v", ErrInvalidValue, d.Key, v)
	}

	if _, ok := d.ChoiceName(value); !ok {
		return 0, fmt.Errorf("%w: %s: %d is not a declared choice value", ErrInvalidValue, d.Key, value)
	}
	return value, nil
}

func (d *Definition) parseRange(v interface{}) (int, error) {
	var value int
	switch val := v.(type) {
	case int:
		value = val
	case float64:
		n, err := d.wholeNumber(val)
		if err != nil {
			return 0, err
		}
		value = n
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		switch s {
		case "default":
			return d.Default, nil
		case "min", "minimum":
			return d.RangeStart, nil
		case "max", "maximum":
			return d.RangeEnd, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidValue, d.Key, val)
		}
		value = n
	default:
		return 0, fmt.Errorf("%w: %s: expected an integer, got %v", ErrInvalidValue, d.Key, v)
	}

	if value < d.RangeStart || value > d.RangeEnd {
		return 0, fmt.Errorf("%w: %s: %d outside [%d, %d]", ErrInvalidValue, d.Key, value, d.RangeStart, d.RangeEnd)
	}
	return value, nil
}

// IsOptionEnabled reports whether a resolved option is set to a non-zero value
func IsOptionEnabled(values Values, key string) bool {
	return values[key] > 0
}

// GetOptionValue returns the resolved value of an option
func GetOptionValue(values Values, key string) (int, bool) {
	v, ok := values[key]
	return v, ok
}

func (d *Definition) wholeNumber(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s: %v is not a whole number", ErrInvalidValue, d.Key, f)
	}
	return int(f), nil
}
