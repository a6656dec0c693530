package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fluxview/internal/action"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string
	Mode action.ThemeMode

	// Base colors
	Background string // Outermost background
	Surface    string // Main content panels
	SurfaceAlt string // Secondary surfaces

	// Selection colors
	SelectionBg   string // Selected prediction background
	SelectionText string // Selected prediction text

	// Border colors
	Border      string // Default border
	BorderFocus string // Focused panel border

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		// Base styles
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		// Text styles
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		// Component styles
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Notice: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Info)).
			Foreground(lipgloss.Color(t.Background)).
			Padding(0, 1),

		on:  t.Success,
		off: t.Faint,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header     lipgloss.Style
	Footer     lipgloss.Style
	Panel      lipgloss.Style
	FocusPanel lipgloss.Style
	Selected   lipgloss.Style
	Notice     lipgloss.Style

	on  string
	off string
}

// Toggle renders label in the on or off color.
func (s Styles) Toggle(label string, on bool) string {
	color := s.off
	if on {
		color = s.on
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(label)
}

// ThemeFor returns the palette for mode. Unknown modes use the dark palette.
func ThemeFor(mode action.ThemeMode) Theme {
	if mode == action.ThemeLight {
		return dayfoxTheme()
	}
	return nightfoxTheme()
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",
		Mode: action.ThemeDark,

		// Base colors
		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		// Selection colors
		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		// Border colors
		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		// Text colors
		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan
	}
}

func dayfoxTheme() Theme {
	// Dayfox palette, the light variant of nightfox.nvim
	return Theme{
		Name: "Dayfox",
		Mode: action.ThemeLight,

		// Base colors
		Background: "#e4dcd4", // bg0
		Surface:    "#f6f2ee", // bg1
		SurfaceAlt: "#dbd1dd", // bg2

		// Selection colors
		SelectionBg:   "#e7d2be", // sel0
		SelectionText: "#3d2b5a", // fg1

		// Border colors
		Border:      "#aab0ad", // bg4
		BorderFocus: "#2848a9", // blue

		// Text colors
		Text:    "#3d2b5a", // fg1
		Muted:   "#837a72", // comment
		Faint:   "#824d5b", // fg3
		Accent:  "#2848a9", // blue
		Success: "#396847", // green
		Warning: "#ac5402", // yellow
		Danger:  "#a5222f", // red
		Info:    "#287980", // cyan
	}
}
