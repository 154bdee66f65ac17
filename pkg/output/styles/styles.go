// Package styles holds the semantic terminal styles sysknife prints with.
//
// Styles are defined in the embedded styles.yaml with adaptive colors that
// follow the terminal's light or dark background.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

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

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Names of the styles every caller may rely on.
var Names = []string{"Error", "Warning", "Success", "Muted", "FilePath", "Heading"}

var registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

func initDefaultStyles() {
	registry = make(map[string]lipgloss.Style, len(Names))
	for _, name := range Names {
		registry[name] = lipgloss.NewStyle()
	}
}

// LoadStylesFromData replaces the registry with styles parsed from YAML.
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		registry[name] = buildStyle(def, colors)
	}
	return nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(def.Bold).
		Italic(def.Italic).
		Underline(def.Underline)

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	return style
}

// GetStyle returns the named style, or an empty style for unknown names.
func GetStyle(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
