package tasks

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/tui/messages"
	"lifeplanner/internal/tui/shared"
	"lifeplanner/internal/tui/theme"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeAddTitle
	modeAddTime
	modeAddDate
	modeConfirmDelete
)

// TaskListModel shows one task collection: schedule, important or secondary.
type TaskListModel struct {
	svc    service.PlannerService
	target data.Target
	view   messages.ViewType
	locale string

	tasks  []data.Task
	cursor int
	offset int

	mode          inputMode
	input         *shared.TextInputModel
	confirm       *shared.ConfirmationModal
	pendingTitle  string
	pendingTime   string
	pendingDelete string

	width  int
	height int
}

// NewTaskListModel creates a list bound to target.
func NewTaskListModel(svc service.PlannerService, target data.Target, view messages.ViewType, locale string) TaskListModel {
	m := TaskListModel{
		svc:    svc,
		target: target,
		view:   view,
		locale: locale,
	}
	m.Refresh()
	return m
}

// SetSize updates the view dimensions
func (m *TaskListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.input != nil {
		m.input.SetWidth(min(width, 60))
	}
}

// Refresh reloads the collection from the planner.
func (m *TaskListModel) Refresh() {
	doc := m.svc.Snapshot()
	m.tasks = doc.Tasks(m.target)
	if m.cursor >= len(m.tasks) {
		m.cursor = max(0, len(m.tasks)-1)
	}
}

// Tasks returns the rows currently shown.
func (m TaskListModel) Tasks() []data.Task {
	return m.tasks
}

// IsInModalState reports whether an input or confirmation owns the keyboard.
func (m TaskListModel) IsInModalState() bool {
	return m.mode != modeNormal
}

func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.TextInputResultMsg:
		return m.handleInputResult(msg)
	case shared.ConfirmationResultMsg:
		return m.handleConfirmationResult(msg)
	}

	if m.confirm != nil {
		if key, ok := msg.(tea.KeyMsg); ok {
			return m, m.confirm.Update(key)
		}
		return m, nil
	}
	if m.input != nil {
		return m, m.input.Update(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleNormalMode(key)
	}
	return m, nil
}

func (m TaskListModel) handleNormalMode(msg tea.KeyMsg) (TaskListModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.moveCursor(-len(m.tasks))
	case "G", "end":
		m.moveCursor(len(m.tasks))
	case " ", "x":
		if t := m.selectedTask(); t != nil {
			m.svc.ToggleTask(m.target, t.ID)
			m.Refresh()
		}
	case "n", "a":
		m.mode = modeAddTitle
		m.input = shared.NewTextInput("Task", "What needs doing?", shared.ValidateRequired)
		m.input.SetWidth(min(m.width, 60))
	case "D", "delete":
		t := m.selectedTask()
		if t == nil {
			return m, nil
		}
		m.pendingDelete = t.ID
		m.confirm = shared.NewConfirmationModal("Delete task?", t.Title, 50)
		m.mode = modeConfirmDelete
	case "esc", "backspace":
		return m, messages.SwitchView(messages.ViewDashboard)
	}
	return m, nil
}

func (m TaskListModel) handleInputResult(msg shared.TextInputResultMsg) (TaskListModel, tea.Cmd) {
	if msg.Cancelled {
		m.resetInput()
		return m, nil
	}

	switch m.mode {
	case modeAddTitle:
		m.pendingTitle = msg.Value
		m.mode = modeAddTime
		m.input = shared.NewTimeInput("Time (optional)")
		m.input.SetWidth(min(m.width, 60))
		return m, nil
	case modeAddTime:
		m.pendingTime = msg.Value
		m.mode = modeAddDate
		m.input = shared.NewTextInput("Date (optional)", "yyyy-MM-dd", shared.ValidateDate)
		m.input.SetWidth(min(m.width, 60))
		return m, nil
	case modeAddDate:
		task, ok := m.svc.AddDatedTask(m.target, m.pendingTitle, m.pendingTime, msg.Value)
		m.resetInput()
		m.Refresh()
		if !ok {
			return m, nil
		}
		if i := slices.IndexFunc(m.tasks, func(t data.Task) bool { return t.ID == task.ID }); i >= 0 {
			m.cursor = i
		}
		return m, messages.Status(fmt.Sprintf("Added %q", task.Title))
	}
	return m, nil
}

func (m TaskListModel) handleConfirmationResult(msg shared.ConfirmationResultMsg) (TaskListModel, tea.Cmd) {
	id := m.pendingDelete
	m.confirm = nil
	m.pendingDelete = ""
	m.mode = modeNormal

	if !msg.Confirmed || id == "" {
		return m, nil
	}
	m.svc.DeleteTask(m.target, id)
	m.Refresh()
	return m, nil
}

func (m *TaskListModel) resetInput() {
	m.input = nil
	m.mode = modeNormal
	m.pendingTitle = ""
	m.pendingTime = ""
}

func (m *TaskListModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.offset, _ = shared.ScrollWindow(m.cursor, m.offset, m.visibleRows(), len(m.tasks))
}

func (m *TaskListModel) selectedTask() *data.Task {
	if m.cursor >= 0 && m.cursor < len(m.tasks) {
		return &m.tasks[m.cursor]
	}
	return nil
}

// visibleRows leaves room for the header (2 lines) and hints (1 line).
func (m TaskListModel) visibleRows() int {
	return max(1, m.height-4)
}

// View renders the task list
func (m TaskListModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	var b strings.Builder

	pending := data.PendingCount(m.tasks)
	title := theme.Title.Render(" "+m.view.Title(m.locale)) + " " +
		theme.Muted.Render(fmt.Sprintf("(%d/%d open)", pending, len(m.tasks)))
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.input != nil {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if len(m.tasks) == 0 {
		b.WriteString(theme.Empty.Render("  Nothing here yet. Press n to add a task."))
		b.WriteString("\n")
	} else {
		start, end := shared.ScrollWindow(m.cursor, m.offset, m.visibleRows(), len(m.tasks))
		for i := start; i < end; i++ {
			prefix := "  "
			if i == m.cursor {
				prefix = theme.Cursor.Render("> ")
			}
			b.WriteString(prefix + shared.StyledTaskLine(m.tasks[i]) + "\n")
		}
	}

	hints := shared.Hints(m.hintBinds()...)
	return shared.CenterWithBottomHints(b.String(), lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hints), m.height)
}

func (m TaskListModel) hintBinds() []shared.HelpBind {
	binds := []shared.HelpBind{
		{Key: "j/k", Desc: "navigate"},
		{Key: "space", Desc: "toggle"},
		{Key: "n", Desc: "new"},
		{Key: "D", Desc: "delete"},
	}
	if m.target == data.TargetSchedule {
		binds = append(binds, shared.HelpBind{Key: "A", Desc: "assistant"})
	}
	return append(binds, shared.HelpBind{Key: "esc", Desc: "dashboard"})
}
