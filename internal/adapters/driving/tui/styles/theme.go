// Package styles provides the colour palette and lipgloss styles for the TUI.
package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the styles are built from.
type Theme struct {
	// Accent marks titles, the selected row and the focused input.
	Accent lipgloss.Color

	// Info marks section headers and mode badges.
	Info lipgloss.Color

	Text    lipgloss.Color
	Dim     lipgloss.Color
	Surface lipgloss.Color
	Bar     lipgloss.Color
	Outline lipgloss.Color

	// Price colours product prices.
	Price lipgloss.Color

	// InStock and OutOfStock colour availability in the product view.
	InStock    lipgloss.Color
	OutOfStock lipgloss.Color

	// Alert colours errors and invalid input.
	Alert lipgloss.Color
}

// DefaultTheme returns the dark storefront palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#7C3AED"),
		Info:       lipgloss.Color("#06B6D4"),
		Text:       lipgloss.Color("#CDD6F4"),
		Dim:        lipgloss.Color("#6C7086"),
		Surface:    lipgloss.Color("#1E1E2E"),
		Bar:        lipgloss.Color("#181825"),
		Outline:    lipgloss.Color("#45475A"),
		Price:      lipgloss.Color("#FAB387"),
		InStock:    lipgloss.Color("#A6E3A1"),
		OutOfStock: lipgloss.Color("#F9E2AF"),
		Alert:      lipgloss.Color("#F38BA8"),
	}
}

// Styles holds the lipgloss styles shared by views and components.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Selected highlights the row under the cursor.
	Selected lipgloss.Style

	Error lipgloss.Style

	// Price renders a formatted price.
	Price lipgloss.Style

	// InStock and OutOfStock render stock levels.
	InStock    lipgloss.Style
	OutOfStock lipgloss.Style

	// Badge renders the mode indicator in the catalog header.
	Badge lipgloss.Style

	// InputField and FocusedInput frame text inputs.
	InputField   lipgloss.Style
	FocusedInput lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles builds styles from theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	input := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Info),
		Normal:   lipgloss.NewStyle().Foreground(theme.Text),
		Muted:    lipgloss.NewStyle().Foreground(theme.Dim),
		Help:     lipgloss.NewStyle().Foreground(theme.Dim),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text).
			Background(theme.Accent),

		Error: lipgloss.NewStyle().Foreground(theme.Alert),

		Price:      lipgloss.NewStyle().Foreground(theme.Price),
		InStock:    lipgloss.NewStyle().Foreground(theme.InStock),
		OutOfStock: lipgloss.NewStyle().Foreground(theme.OutOfStock),

		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Surface).
			Background(theme.Info).
			Padding(0, 1),

		InputField:   input.BorderForeground(theme.Outline),
		FocusedInput: input.BorderForeground(theme.Accent),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Dim).
			Background(theme.Bar).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles built from DefaultTheme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Stock renders a stock level, highlighting items that are sold out.
func (s *Styles) Stock(n int) string {
	if n <= 0 {
		return s.OutOfStock.Render("out of stock")
	}
	return s.InStock.Render(strconv.Itoa(n) + " in stock")
}

