package img2sketch

import (
	"fmt"
	"strings"
)

// Style is one of the fixed sketch presets.
type Style int

// Styles in declaration order.
const (
	Detailed Style = iota
	Medium
	Light
	Bold
	Minimalist
)

type styleDef struct {
	name     string
	sigma    float64
	strength int
	summary  string
}

var styleTable = [...]styleDef{
	Detailed:   {"Detailed", 5, 5, "fine lines, captures texture"},
	Medium:     {"Medium", 12, 5, "balanced detail and simplicity"},
	Light:      {"Light", 20, 4, "soft, minimal lines"},
	Bold:       {"Bold", 10, 7, "strong, dark strokes"},
	Minimalist: {"Minimalist", 25, 4, "very few lines, simplified forms"},
}

// Styles returns every preset in declaration order.
func Styles() []Style {
	styles := make([]Style, len(styleTable))
	for i := range styleTable {
		styles[i] = Style(i)
	}
	return styles
}

// Valid reports whether s is one of the declared presets.
func (s Style) Valid() bool {
	return s >= 0 && int(s) < len(styleTable)
}

// String returns the display name, e.g. "Bold".
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleTable[s].name
}

// Sigma returns the preset blur sigma.
func (s Style) Sigma() float64 {
	if !s.Valid() {
		return 0
	}
	return styleTable[s].sigma
}

// SharpenStrength returns the preset sharpen strength.
func (s Style) SharpenStrength() int {
	if !s.Valid() {
		return 0
	}
	return styleTable[s].strength
}

// Summary returns a one-line description for help output.
func (s Style) Summary() string {
	if !s.Valid() {
		return ""
	}
	return styleTable[s].summary
}

// ParseStyle maps a case-insensitive preset name to its Style.
func ParseStyle(name string) (Style, error) {
	for i, def := range styleTable {
		if strings.EqualFold(strings.TrimSpace(name), def.name) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown style %q (want one of %s)",
		ErrInvalidParameter, name, strings.Join(StyleNames(), ", "))
}

// StyleNames returns the lower-case preset names in declaration order.
func StyleNames() []string {
	names := make([]string, len(styleTable))
	for i, def := range styleTable {
		names[i] = strings.ToLower(def.name)
	}
	return names
}
