package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/devluplabs/socterm/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is one row of the archive's theme table.
type Palette struct {
	Background string
	Text       string
	Dim        string
	Accent     string
	Error      string
	Warning    string
	Success    string
}

var palettes = map[int]Palette{
	config.ThemeNeutral: {
		Background: "#0D1117",
		Text:       "#4AF626",
		Dim:        "#2EA043",
		Accent:     "#58A6FF",
		Error:      "#F85149",
		Warning:    "#F0883E",
		Success:    "#3FB950",
	},
	config.ThemeWinter: {
		Background: "#0D1117",
		Text:       "#E6F3FF",
		Dim:        "#B3D9FF",
		Accent:     "#87CEEB",
		Error:      "#F85149",
		Warning:    "#FFB347",
		Success:    "#4FC3F7",
	},
	config.ThemeSummer: {
		Background: "#0D1117",
		Text:       "#4AF626",
		Dim:        "#2EA043",
		Accent:     "#58A6FF",
		Error:      "#F85149",
		Warning:    "#F0883E",
		Success:    "#3FB950",
	},
}

// PaletteFor returns the palette of a theme id, winter for unknown ids.
func PaletteFor(theme int) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[config.ThemeWinter]
}

// Inverted applies invert(1) hue-rotate(180deg) to every color, which keeps
// hues while flipping lightness. Used by the Konami code.
func (p Palette) Inverted() Palette {
	return Palette{
		Background: invertHex(p.Background),
		Text:       invertHex(p.Text),
		Dim:        invertHex(p.Dim),
		Accent:     invertHex(p.Accent),
		Error:      invertHex(p.Error),
		Warning:    invertHex(p.Warning),
		Success:    invertHex(p.Success),
	}
}

func invertHex(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	inv := colorful.Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}
	h, s, l := inv.Hsl()
	return colorful.Hsl(math.Mod(h+180, 360), s, l).Clamped().Hex()
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Text     lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Prompt   lipgloss.Style
	Command  lipgloss.Style
	Code     lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Chip     lipgloss.Style
	Toast    lipgloss.Style
}

func NewStyles(p Palette) Styles {
	text := lipgloss.Color(p.Text)
	dim := lipgloss.Color(p.Dim)
	accent := lipgloss.Color(p.Accent)
	bg := lipgloss.Color(p.Background)

	return Styles{
		Text:     lipgloss.NewStyle().Foreground(text),
		Dim:      lipgloss.NewStyle().Foreground(dim),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)),
		Prompt:   lipgloss.NewStyle().Foreground(text).Bold(true),
		Command:  lipgloss.NewStyle().Foreground(text).Bold(true),
		Code:     lipgloss.NewStyle().Foreground(dim),
		Title:    lipgloss.NewStyle().Foreground(text).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(bg).Background(dim).Bold(true).Padding(0, 1),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1),
		Selected: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2563EB")).Padding(0, 1).Bold(true),
		Tab:      lipgloss.NewStyle().Foreground(dim).Padding(0, 1),
		TabOn:    lipgloss.NewStyle().Foreground(bg).Background(accent).Padding(0, 1).Bold(true),
		Chip:     lipgloss.NewStyle().Foreground(text).Background(lipgloss.Color("#1F2A37")).Padding(0, 1),
		Toast:    lipgloss.NewStyle().Foreground(bg).Background(accent).Padding(0, 1),
	}
}
