package agenda

import (
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/tui/theme"
)

var (
	calDayHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.TextMuted).Width(5).Align(lipgloss.Center)
	calDayStyle        = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	calTodayStyle      = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Bold(true).Foreground(theme.Success)
	calCursorStyle     = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Bold(true).Foreground(theme.TextBright).Background(theme.Primary)
	calHasItemsStyle   = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(theme.Warning)
	calEmptyStyle      = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(theme.TextMuted)
	calMonthTitleStyle = theme.Title
	detailHeaderStyle  = theme.Subtitle
	detailCountStyle   = theme.Muted
	emptyStyle         = theme.Empty
	cursorStyle        = theme.Cursor
)
