package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StyleSheet is the parsed styles.yaml
type StyleSheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Styles maps semantic names to lipgloss styles
type Styles map[string]lipgloss.Style

// LoadStyles parses a style sheet into lipgloss styles
func LoadStyles(data []byte) (Styles, error) {
	var sheet StyleSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	out := make(Styles, len(sheet.Styles))
	for name, def := range sheet.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			color, ok := sheet.Colors[def.Foreground]
			if !ok {
				return nil, fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
			}
			style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
		}
		out[name] = style
	}
	return out, nil
}

// DefaultStyles returns the embedded style sheet
func DefaultStyles() Styles {
	styles, err := LoadStyles(stylesYAML)
	if err != nil {
		// the embedded sheet is covered by tests
		panic(err)
	}
	return styles
}

// Render applies the named style, leaving text unchanged for unknown names
func (s Styles) Render(name, text string) string {
	style, ok := s[name]
	if !ok {
		return text
	}
	return style.Render(text)
}
