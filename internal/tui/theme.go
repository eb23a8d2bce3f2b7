package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Palettes — Catppuccin Mocha (dark) and Latte (light), true-color hex
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

// Palette is one named color scheme.
type Palette struct {
	Name string

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color

	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Star    lipgloss.Color
}

func DarkPalette() Palette {
	return Palette{
		Name:    "dark",
		Text:    "#cdd6f4",
		Subtext: "#a6adc8",
		Muted:   "#7f849c",
		Surface: "#313244",
		Border:  "#585b70",
		Accent:  "#89b4fa",
		Success: "#a6e3a1",
		Error:   "#f38ba8",
		Warning: "#f9e2af",
		Star:    "#f9e2af",
	}
}

func LightPalette() Palette {
	return Palette{
		Name:    "light",
		Text:    "#4c4f69",
		Subtext: "#6c6f85",
		Muted:   "#9ca0b0",
		Surface: "#ccd0da",
		Border:  "#acb0be",
		Accent:  "#1e66f5",
		Success: "#40a02b",
		Error:   "#d20f39",
		Warning: "#df8e1d",
		Star:    "#df8e1d",
	}
}

// PaletteByName maps a persisted theme slot value to a palette, defaulting
// to light.
func PaletteByName(name string) Palette {
	if name == "dark" {
		return DarkPalette()
	}
	return LightPalette()
}

// ---------------------------------------------------------------------------
// Styles built from a palette
// ---------------------------------------------------------------------------

type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Subtext    lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Star       lipgloss.Style
	Chip       lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Modal      lipgloss.Style
	Help       lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Subtext:    lipgloss.NewStyle().Foreground(p.Subtext),
		Muted:      lipgloss.NewStyle().Foreground(p.Muted),
		Accent:     lipgloss.NewStyle().Foreground(p.Accent),
		Success:    lipgloss.NewStyle().Foreground(p.Success),
		Error:      lipgloss.NewStyle().Foreground(p.Error),
		Star:       lipgloss.NewStyle().Foreground(p.Star),
		Chip:       lipgloss.NewStyle().Foreground(p.Subtext).Background(p.Surface).Padding(0, 1),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		CardActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(0, 1),
		Modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(0, 2),
		Help:       lipgloss.NewStyle().Foreground(p.Muted),
	}
}
