package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text  string
	Muted string

	Accent        string
	SelectionBg   string
	SelectionText string
	Border        string
	Pulse         string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		TabActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		Indicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		IndicatorPulse: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Pulse)).
			Bold(true),

		Page: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		PageTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		HelpText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	Separator      lipgloss.Style
	Indicator      lipgloss.Style
	IndicatorPulse lipgloss.Style
	Page           lipgloss.Style
	PageTitle      lipgloss.Style
	Status         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpText       lipgloss.Style
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Nord":    nordTheme(),
	"Gruvbox": gruvboxTheme(),
}

var themeOrder = []string{"Dracula", "Nord", "Gruvbox"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com/contribute
	return Theme{
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#44475a",
		Text:          "#f8f8f2",
		Muted:         "#6272a4",
		Accent:        "#bd93f9",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
		Border:        "#6272a4",
		Pulse:         "#ff79c6",
	}
}

func nordTheme() Theme {
	// Nord palette: https://www.nordtheme.com/docs/colors-and-palettes
	return Theme{
		Name:          "Nord",
		Background:    "#2e3440",
		Surface:       "#3b4252",
		Text:          "#eceff4",
		Muted:         "#4c566a",
		Accent:        "#88c0d0",
		SelectionBg:   "#434c5e",
		SelectionText: "#eceff4",
		Border:        "#4c566a",
		Pulse:         "#ebcb8b",
	}
}

func gruvboxTheme() Theme {
	// Gruvbox dark palette
	return Theme{
		Name:          "Gruvbox",
		Background:    "#282828",
		Surface:       "#3c3836",
		Text:          "#ebdbb2",
		Muted:         "#928374",
		Accent:        "#fabd2f",
		SelectionBg:   "#504945",
		SelectionText: "#fbf1c7",
		Border:        "#665c54",
		Pulse:         "#fe8019",
	}
}
