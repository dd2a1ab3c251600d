package options

import (
	"fmt"
	"strings"
)

// Kind identifies how an option's value is interpreted
type Kind string

const (
	KindToggle          Kind = "toggle"
	KindDefaultOnToggle Kind = "default_on_toggle"
	KindChoice          Kind = "choice"
	KindRange           Kind = "range"
)

// ParseKind parses a manifest kind name
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindToggle:
		return KindToggle, nil
	case KindDefaultOnToggle, "defaultontoggle":
		return KindDefaultOnToggle, nil
	case KindChoice:
		return KindChoice, nil
	case KindRange:
		return KindRange, nil
	default:
		return "", fmt.Errorf("unknown option kind %q", s)
	}
}

// Visibility is a set of flags controlling where an option is surfaced
type Visibility int

const (
	VisibilityNone      Visibility = 0
	VisibilityTemplate  Visibility = 1 << 0
	VisibilitySimpleUI  Visibility = 1 << 1
	VisibilityComplexUI Visibility = 1 << 2
	VisibilitySpoiler   Visibility = 1 << 3

	VisibilityAll = VisibilityTemplate | VisibilitySimpleUI | VisibilityComplexUI | VisibilitySpoiler
)

// Has reports whether every flag in other is set
func (v Visibility) Has(other Visibility) bool {
	return v&other == other
}

func (v Visibility) String() string {
	if v == VisibilityNone {
		return "none"
	}
	if v == VisibilityAll {
		return "all"
	}

	var parts []string
	if v.Has(VisibilityTemplate) {
		parts = append(parts, "template")
	}
	if v.Has(VisibilitySimpleUI) {
		parts = append(parts, "simple_ui")
	}
	if v.Has(VisibilityComplexUI) {
		parts = append(parts, "complex_ui")
	}
	if v.Has(VisibilitySpoiler) {
		parts = append(parts, "spoiler")
	}
	return strings.Join(parts, "|")
}
