package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/tui/theme"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2)
)

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(theme.Title.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			sb.WriteString("  " + helpKeyStyle.Width(14).Render(bind.Key) + helpDescStyle.Render(bind.Desc) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("Press any key to close"))

	box := helpBoxStyle.Render(sb.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Hints joins "[key] desc" pairs for a view's bottom line.
func Hints(binds ...HelpBind) string {
	parts := make([]string, len(binds))
	for i, b := range binds {
		parts[i] = "[" + b.Key + "] " + b.Desc
	}
	return theme.HelpHint.Render(strings.Join(parts, "  "))
}
