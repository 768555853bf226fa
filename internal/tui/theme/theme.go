package theme

import (
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/planner/data"
)

// Palette: ANSI 0-15 plus one 256-color surface.
var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary       = lipgloss.Color("4") // blue
	Secondary     = lipgloss.Color("6") // cyan
	Accent        = lipgloss.Color("5") // magenta
	Success       = lipgloss.Color("2") // green
	Warning       = lipgloss.Color("3") // yellow
	Danger        = lipgloss.Color("1") // red
	Surface       = lipgloss.Color("236")
	Border        = lipgloss.Color("8")
	BorderFocused = lipgloss.Color("4")
)

// Semantic text styles
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Muted    = lipgloss.NewStyle().Foreground(TextMuted)
	Bold     = lipgloss.NewStyle().Bold(true)
	Empty    = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Cursor     = lipgloss.NewStyle().Bold(true).Foreground(Success)
	Selected   = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	SelectedBg = lipgloss.NewStyle().Foreground(TextBright).Background(Surface)

	Time      = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Date      = lipgloss.NewStyle().Foreground(Accent)
	Important = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Done      = lipgloss.NewStyle().Foreground(TextMuted).Strikethrough(true)
)

// Reusable component helpers
var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	Banner = lipgloss.NewStyle().Bold(true).Foreground(TextBright).Background(Accent).Padding(0, 1)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
	CardFocused = Card.BorderForeground(BorderFocused)
)

// ViewColors gives each view its accent, in messages.Views order.
var ViewColors = []lipgloss.Color{
	Primary, TextMuted, Primary, Success, Danger, Warning, Accent, Warning,
}

var mealColors = map[data.MealType]lipgloss.Color{
	data.Breakfast: lipgloss.Color("208"),
	data.Lunch:     Success,
	data.Dinner:    Primary,
	data.Snack:     Warning,
}

// Meal returns the label style for a meal type.
func Meal(t data.MealType) lipgloss.Style {
	c, ok := mealColors[t]
	if !ok {
		c = Text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
