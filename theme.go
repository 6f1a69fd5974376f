package knob

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// Theme is a serializable appearance for a knob. Themes affect only how
// the control is drawn, never its value or mapping.
type Theme struct {
	TrackColor    string  `yaml:"track_color"`
	PointerColor  string  `yaml:"pointer_color"`
	LineWidth     float64 `yaml:"line_width"`
	PointerLength float64 `yaml:"pointer_length"`
}

// DefaultTheme mirrors the construction defaults.
func DefaultTheme() Theme {
	return Theme{
		TrackColor:    "#007AFF",
		PointerColor:  "#007AFF",
		LineWidth:     2,
		PointerLength: 6,
	}
}

// LoadTheme reads a YAML theme file.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("knob: read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes and validates a YAML theme document. Absent fields
// keep their default values.
func ParseTheme(data []byte) (Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("knob: parse theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Validate checks the theme for values a knob would reject.
func (t Theme) Validate() error {
	if t.LineWidth <= 0 {
		return fmt.Errorf("%w: theme line width %v must be positive", ErrInvalidConfig, t.LineWidth)
	}
	if t.PointerLength < 0 {
		return fmt.Errorf("%w: theme pointer length %v must not be negative", ErrInvalidConfig, t.PointerLength)
	}
	for _, col := range []string{t.TrackColor, t.PointerColor} {
		if !validHexColor(col) {
			return fmt.Errorf("%w: theme color %q is not a hex color", ErrInvalidConfig, col)
		}
	}
	return nil
}

// Apply pushes the theme onto a knob.
func (t Theme) Apply(k *Knob) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := k.SetLineWidth(t.LineWidth); err != nil {
		return err
	}
	if err := k.SetPointerLength(t.PointerLength); err != nil {
		return err
	}
	k.SetTrackColor(gg.Hex(t.TrackColor))
	k.SetPointerColor(gg.Hex(t.PointerColor))
	return nil
}

// validHexColor accepts the formats gg.Hex parses: RGB, RGBA, RRGGBB,
// RRGGBBAA, with an optional leading '#'.
func validHexColor(s string) bool {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
