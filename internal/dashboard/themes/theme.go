// Package themes defines the visual styles available to the dashboard.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the dashboard.
type Theme struct {
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Box         lipgloss.Style
	BorderedBox lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	ChartBar    lipgloss.Style
	ChartEmpty  lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
	Secondary   lipgloss.Color
	Primary     lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Foreground  lipgloss.Color
	Error       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary:    lipgloss.Color("#7c3aed"),
	Secondary:  lipgloss.Color("#a78bfa"),
	Error:      lipgloss.Color("#ef4444"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),

	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#7c3aed")).
		Padding(0, 2),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Padding(0, 2),

	ChartBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7c3aed")),
	ChartEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#404040")),

	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	Primary:    lipgloss.Color("#cba6f7"),
	Secondary:  lipgloss.Color("#f5c2e7"),
	Error:      lipgloss.Color("#f38ba8"),
	Foreground: lipgloss.Color("#cdd6f4"),
	Border:     lipgloss.Color("#45475a"),
	Muted:      lipgloss.Color("#6c7086"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#cba6f7")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#45475a")).
		Foreground(lipgloss.Color("#cdd6f4")),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(1, 2),

	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1e1e2e")).
		Background(lipgloss.Color("#cba6f7")).
		Padding(0, 2),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Padding(0, 2),

	ChartBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cba6f7")),
	ChartEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#45475a")),

	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89dceb")).
		Bold(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
