// Package theme holds the color palettes used by the TUI
package theme

import (
	"fmt"
	"strings"
)

// Palette is the set of colors a screen is drawn with, as hex strings
type Palette struct {
	Title  string
	Border string
	Text   string
	Detail string
	Muted  string
	OK     string
	Warn   string
	Error  string
}

// Theme is a named palette
type Theme struct {
	Name   string
	IsDark bool
	Colors Palette
}

// Dark is the Dracula palette
var Dark = Theme{
	Name:   "dark",
	IsDark: true,
	Colors: Palette{
		Title:  "#bd93f9",
		Border: "#6272a4",
		Text:   "#f8f8f2",
		Detail: "#8be9fd",
		Muted:  "#6272a4",
		OK:     "#50fa7b",
		Warn:   "#f1fa8c",
		Error:  "#ff5555",
	},
}

// Light is the Alucard palette, Dracula's light variant
var Light = Theme{
	Name:   "light",
	IsDark: false,
	Colors: Palette{
		Title:  "#644ac9",
		Border: "#635d97",
		Text:   "#1f1f1f",
		Detail: "#036a96",
		Muted:  "#635d97",
		OK:     "#14710a",
		Warn:   "#846e15",
		Error:  "#cb3a2a",
	},
}

// Themes maps names accepted by output.theme to palettes
var Themes = map[string]Theme{
	Dark.Name:  Dark,
	Light.Name: Light,
}

// Resolve maps a config value to a theme.
// "auto" and "" follow the system preference.
func Resolve(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "auto" {
		return GetSystemTheme(), nil
	}
	t, ok := Themes[name]
	if !ok {
		return Dark, fmt.Errorf("unknown theme %q (want auto, dark or light)", name)
	}
	return t, nil
}
