package agenda

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

const dateLayout = "2006-01-02"

// MonthModel is the month calendar. Days carrying dated tasks are marked and
// the detail panel lists the cursor day's tasks.
type MonthModel struct {
	svc    service.PlannerService
	locale string
	now    func() time.Time

	viewMonth  time.Time // first of the month being viewed
	cursorDate time.Time
	counts     map[string]int // date -> dated tasks that day

	detailItems []data.Task
	detailIdx   int
	inDetail    bool

	input *shared.TextInputModel

	width  int
	height int
}

// NewMonthModel creates a month view opened on the current month.
func NewMonthModel(svc service.PlannerService, locale string, now func() time.Time) MonthModel {
	if now == nil {
		now = time.Now
	}
	today := now()
	m := MonthModel{
		svc:        svc,
		locale:     locale,
		now:        now,
		viewMonth:  time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local),
		cursorDate: today,
	}
	m.Refresh()
	return m
}

// Refresh recounts dated tasks for the visible month.
func (m *MonthModel) Refresh() {
	doc := m.svc.Snapshot()
	m.counts = make(map[string]int)
	prefix := m.viewMonth.Format("2006-01")
	for _, target := range data.Targets {
		for _, t := range doc.Tasks(target) {
			if strings.HasPrefix(t.Date, prefix) {
				m.counts[t.Date]++
			}
		}
	}
	m.refreshDetail()
}

func (m *MonthModel) refreshDetail() {
	m.detailItems = m.svc.TasksOnDate(m.cursorDate.Format(dateLayout))
	if m.detailIdx >= len(m.detailItems) {
		m.detailIdx = max(0, len(m.detailItems)-1)
	}
	if len(m.detailItems) == 0 {
		m.inDetail = false
	}
}

// SetSize updates the view dimensions
func (m *MonthModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// CursorDate returns the day under the cursor as YYYY-MM-DD.
func (m MonthModel) CursorDate() string {
	return m.cursorDate.Format(dateLayout)
}

// DetailItems returns the tasks listed for the cursor day.
func (m MonthModel) DetailItems() []data.Task {
	return m.detailItems
}

// IsInModalState reports whether the add-task input is open.
func (m MonthModel) IsInModalState() bool {
	return m.input != nil
}

// Update handles key events for the month view
func (m MonthModel) Update(msg tea.Msg) (MonthModel, tea.Cmd) {
	if res, ok := msg.(shared.TextInputResultMsg); ok {
		m.input = nil
		if res.Cancelled {
			return m, nil
		}
		task, ok := m.svc.AddDatedTask(data.TargetSchedule, res.Value, "", m.CursorDate())
		m.Refresh()
		if !ok {
			return m, nil
		}
		return m, messages.Status(fmt.Sprintf("Added %q on %s", task.Title, task.Date))
	}
	if m.input != nil {
		return m, m.input.Update(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if m.inDetail {
			return m.updateDetail(key)
		}
		return m.updateCalendar(key)
	}
	return m, nil
}

func (m MonthModel) updateCalendar(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.moveCursor(m.cursorDate.AddDate(0, 0, -1))
	case "l", "right":
		m.moveCursor(m.cursorDate.AddDate(0, 0, 1))
	case "k", "up":
		m.moveCursor(m.cursorDate.AddDate(0, 0, -7))
	case "j", "down":
		m.moveCursor(m.cursorDate.AddDate(0, 0, 7))
	case "H":
		m.moveCursor(m.viewMonth.AddDate(0, -1, 0))
	case "L":
		m.moveCursor(m.viewMonth.AddDate(0, 1, 0))
	case "t":
		m.moveCursor(m.now())
	case "n", "a":
		m.input = shared.NewTextInput("Task on "+m.CursorDate(), "What is planned?", shared.ValidateRequired)
		m.input.SetWidth(min(m.width, 60))
	case "enter":
		if len(m.detailItems) > 0 {
			m.inDetail = true
			m.detailIdx = 0
		}
	case "esc", "backspace":
		return m, messages.SwitchView(messages.ViewDashboard)
	}
	return m, nil
}

func (m MonthModel) updateDetail(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.detailIdx < len(m.detailItems)-1 {
			m.detailIdx++
		}
	case "k", "up":
		if m.detailIdx > 0 {
			m.detailIdx--
		}
	case " ", "x":
		if m.detailIdx < len(m.detailItems) {
			id := m.detailItems[m.detailIdx].ID
			if target, ok := m.targetOf(id); ok {
				m.svc.ToggleTask(target, id)
				m.Refresh()
			}
		}
	case "esc":
		m.inDetail = false
	}
	return m, nil
}

// targetOf finds which collection holds the task with id.
func (m MonthModel) targetOf(id string) (data.Target, bool) {
	doc := m.svc.Snapshot()
	for _, target := range data.Targets {
		for _, t := range doc.Tasks(target) {
			if t.ID == id {
				return target, true
			}
		}
	}
	return "", false
}

func (m *MonthModel) moveCursor(to time.Time) {
	m.cursorDate = to
	if to.Year() != m.viewMonth.Year() || to.Month() != m.viewMonth.Month() {
		m.viewMonth = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.Local)
		m.Refresh()
		return
	}
	m.refreshDetail()
}

// View renders the month agenda view
func (m MonthModel) View() string {
	var sb strings.Builder

	title := calMonthTitleStyle.Render(fmt.Sprintf(" %s  %s", messages.ViewMonth.Title(m.locale), m.viewMonth.Format("January 2006")))
	nav := theme.HelpHint.Render("[h/l: day] [k/j: week] [H/L: month] [t: today]")
	sb.WriteString(shared.Header(title, nav, m.width))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderCalendar())
	sb.WriteString("\n")

	if m.input != nil {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.renderDetailPanel())
	}

	var hints string
	if m.inDetail {
		hints = shared.Hints(
			shared.HelpBind{Key: "j/k", Desc: "navigate"},
			shared.HelpBind{Key: "space", Desc: "toggle"},
			shared.HelpBind{Key: "esc", Desc: "calendar"},
		)
	} else {
		hints = shared.Hints(
			shared.HelpBind{Key: "enter", Desc: "day detail"},
			shared.HelpBind{Key: "n", Desc: "new dated task"},
			shared.HelpBind{Key: "esc", Desc: "dashboard"},
		)
	}
	return shared.CenterWithBottomHints(sb.String(), lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hints), m.height)
}

func (m MonthModel) renderCalendar() string {
	var sb strings.Builder

	dayHeaders := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	for _, d := range dayHeaders {
		sb.WriteString(calDayHeaderStyle.Render(d))
	}
	sb.WriteString("\n")

	firstDay := m.viewMonth
	startWeekday := int(firstDay.Weekday())
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()
	today := m.now()

	currentDay := 1 - startWeekday

	for week := 0; week < 6; week++ {
		for weekday := 0; weekday < 7; weekday++ {
			if currentDay < 1 || currentDay > daysInMonth {
				sb.WriteString(calEmptyStyle.Render(""))
				currentDay++
				continue
			}

			date := time.Date(m.viewMonth.Year(), m.viewMonth.Month(), currentDay, 0, 0, 0, 0, time.Local)
			count := m.counts[date.Format(dateLayout)]

			dayStr := fmt.Sprintf("%2d", currentDay)
			if count > 0 {
				dayStr = fmt.Sprintf("%2d*", currentDay)
			}

			switch {
			case isSameDay(date, m.cursorDate):
				sb.WriteString(calCursorStyle.Render(dayStr))
			case isSameDay(date, today):
				sb.WriteString(calTodayStyle.Render(dayStr))
			case count > 0:
				sb.WriteString(calHasItemsStyle.Render(dayStr))
			default:
				sb.WriteString(calDayStyle.Render(dayStr))
			}
			currentDay++
		}
		sb.WriteString("\n")

		if currentDay > daysInMonth {
			break
		}
	}

	return sb.String()
}

func (m MonthModel) renderDetailPanel() string {
	var sb strings.Builder

	header := detailHeaderStyle.Render(" " + m.cursorDate.Format("Mon, Jan 2"))

	if len(m.detailItems) == 0 {
		sb.WriteString(header + "  " + emptyStyle.Render("Nothing planned"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(header + " " + detailCountStyle.Render(fmt.Sprintf("(%d tasks)", len(m.detailItems))))
	sb.WriteString("\n")

	for i, t := range m.detailItems {
		prefix := "     "
		if m.inDetail && i == m.detailIdx {
			prefix = "   " + cursorStyle.Render("> ")
		}
		sb.WriteString(prefix + shared.StyledTaskLine(t) + "\n")
	}

	return sb.String()
}

func isSameDay(d1, d2 time.Time) bool {
	return d1.Year() == d2.Year() && d1.Month() == d2.Month() && d1.Day() == d2.Day()
}
