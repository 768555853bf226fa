package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/tui/messages"
	"lifeplanner/internal/tui/shared"
	"lifeplanner/internal/tui/theme"
)

const (
	cardWidth = 34
	columns   = 2
)

// DashboardModel shows one card per section with a short count.
type DashboardModel struct {
	svc    service.PlannerService
	locale string
	now    func() time.Time

	doc      data.AppData
	selected int

	width  int
	height int
}

func NewDashboardModel(svc service.PlannerService, locale string, now func() time.Time) DashboardModel {
	if now == nil {
		now = time.Now
	}
	m := DashboardModel{svc: svc, locale: locale, now: now}
	m.Refresh()
	return m
}

func (m *DashboardModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *DashboardModel) Refresh() {
	m.doc = m.svc.Snapshot()
}

// sections are the cards, everything but the dashboard itself.
func sections() []messages.ViewType {
	return messages.Views[1:]
}

// Selected returns the view behind the focused card.
func (m DashboardModel) Selected() messages.ViewType {
	return sections()[m.selected]
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := len(sections())
	switch key.String() {
	case "l", "right", "tab":
		m.selected = (m.selected + 1) % n
	case "h", "left", "shift+tab":
		m.selected = (m.selected - 1 + n) % n
	case "j", "down":
		if m.selected+columns < n {
			m.selected += columns
		}
	case "k", "up":
		if m.selected-columns >= 0 {
			m.selected -= columns
		}
	case "enter":
		return m, messages.SwitchView(m.Selected())
	}
	return m, nil
}

// summary is the count line shown on a card.
func (m DashboardModel) summary(v messages.ViewType) string {
	en := strings.HasPrefix(strings.ToLower(m.locale), "en")
	pick := func(ru, eng string) string {
		if en {
			return eng
		}
		return ru
	}

	switch v {
	case messages.ViewSoftware:
		lines := 0
		if m.doc.SoftwareNotes != "" {
			lines = strings.Count(m.doc.SoftwareNotes, "\n") + 1
		}
		return fmt.Sprintf(pick("%d строк", "%d lines"), lines)
	case messages.ViewSchedule:
		return fmt.Sprintf(pick("%d записей", "%d entries"), len(m.doc.Schedule))
	case messages.ViewNutrition:
		return fmt.Sprintf(pick("%d приёмов пищи", "%d meals"), len(m.doc.Nutrition))
	case messages.ViewImportant:
		return fmt.Sprintf(pick("%d открыто", "%d open"), data.PendingCount(m.doc.ImportantTasks))
	case messages.ViewSecondary:
		return fmt.Sprintf(pick("%d открыто", "%d open"), data.PendingCount(m.doc.SecondaryTasks))
	case messages.ViewMonth:
		today := data.TasksOnDate(m.doc, m.now().Format("2006-01-02"))
		return fmt.Sprintf(pick("%d на сегодня", "%d today"), len(today))
	case messages.ViewNotes:
		return fmt.Sprintf(pick("%d заметок", "%d notes"), len(m.doc.Notes))
	}
	return ""
}

func (m DashboardModel) renderCard(i int, v messages.ViewType) string {
	style := theme.Card.Width(cardWidth)
	if i == m.selected {
		style = theme.CardFocused.Width(cardWidth)
	}
	color := theme.ViewColors[int(v)%len(theme.ViewColors)]

	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(v.Title(m.locale))
	desc := theme.Muted.Render(shared.Truncate(v.Description(m.locale), cardWidth-2))
	count := theme.Bold.Render(m.summary(v))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, desc, count))
}

func (m DashboardModel) View() string {
	var rows []string
	var row []string
	for i, v := range sections() {
		row = append(row, m.renderCard(i, v))
		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(messages.ViewDashboard.Title(m.locale)),
		theme.Muted.Render(messages.ViewDashboard.Description(m.locale)),
		theme.Date.Render(m.now().Format("Monday, 2006-01-02 15:04")),
		"",
	)
	grid := lipgloss.JoinVertical(lipgloss.Center, append([]string{header}, rows...)...)
	content := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, grid)

	hints := shared.Hints(
		shared.HelpBind{Key: "h/j/k/l", Desc: "move"},
		shared.HelpBind{Key: "enter", Desc: "open"},
		shared.HelpBind{Key: "1-7", Desc: "jump"},
		shared.HelpBind{Key: "?", Desc: "help"},
		shared.HelpBind{Key: "q", Desc: "quit"},
	)
	return shared.CenterWithBottomHints(content, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hints), m.height)
}
