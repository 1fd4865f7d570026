package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a full set of UI colors.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

var DarkPalette = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#60A5FA"), // Sky
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

var LightPalette = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#1D4ED8"), // Blue
	Secondary: lipgloss.Color("#0F766E"), // Deep Teal
	Accent:    lipgloss.Color("#B45309"), // Brown Amber
	Success:   lipgloss.Color("#15803D"), // Forest
	Error:     lipgloss.Color("#BE123C"), // Crimson
	Text:      lipgloss.Color("#0F172A"), // Navy
	TextDim:   lipgloss.Color("#475569"), // Slate
	BgCard:    lipgloss.Color("#E2E8F0"), // Mist
	Border:    lipgloss.Color("#CBD5E1"), // Light Slate
}

// Active colors. Apply swaps them together with the derived styles.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	Code           lipgloss.Style
)

var current = DarkPalette

func init() {
	Apply(DarkPalette)
}

// Current returns the active palette.
func Current() Palette {
	return current
}

// ForName returns the palette called name, falling back to dark.
func ForName(name string) Palette {
	if name == LightPalette.Name {
		return LightPalette
	}
	return DarkPalette
}

// Apply makes p the active palette and rebuilds every style.
func Apply(p Palette) {
	current = p
	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgCard, Border = p.BgCard, p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Foreground(Border)

	TabActive = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
		Foreground(TextDim).
		Padding(0, 1)

	Code = lipgloss.NewStyle().
		Foreground(Accent)
}
