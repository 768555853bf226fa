package software

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/tui/messages"
	"lifeplanner/internal/tui/shared"
	"lifeplanner/internal/tui/theme"
)

// SoftwareModel is a free-text area saved on every edit.
type SoftwareModel struct {
	svc    service.PlannerService
	locale string
	area   textarea.Model
	// readOnly is set when the textarea cannot hold the stored text exactly
	// (tabs, CR line endings). Editing would rewrite it on the first keystroke.
	readOnly bool

	width  int
	height int
}

func NewSoftwareModel(svc service.PlannerService, locale string) SoftwareModel {
	ta := textarea.New()
	ta.Placeholder = "Write anything..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Blur()
	m := SoftwareModel{svc: svc, locale: locale, area: ta}
	m.load()
	return m
}

func (m *SoftwareModel) load() {
	stored := m.svc.Snapshot().SoftwareNotes
	m.area.SetValue(stored)
	m.readOnly = m.area.Value() != stored
}

func (m *SoftwareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.area.SetWidth(max(10, width-4))
	m.area.SetHeight(max(3, height-5))
}

// Refresh reloads the text unless it is being edited.
func (m *SoftwareModel) Refresh() {
	if m.area.Focused() {
		return
	}
	m.load()
}

// IsInModalState is true while editing so global keys go to the textarea.
func (m SoftwareModel) IsInModalState() bool {
	return m.area.Focused()
}

func (m SoftwareModel) Update(msg tea.Msg) (SoftwareModel, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)

	if !m.area.Focused() {
		if !isKey {
			return m, nil
		}
		switch key.String() {
		case "e", "i", "enter":
			if m.readOnly {
				return m, messages.StatusError("Text has tabs or CR line endings; edit it with `lifeplanner soft set -`")
			}
			cmd := m.area.Focus()
			return m, cmd
		case "esc", "backspace":
			return m, messages.SwitchView(messages.ViewDashboard)
		}
		return m, nil
	}

	if isKey && key.String() == "esc" {
		m.area.Blur()
		return m, nil
	}

	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if after := m.area.Value(); after != before {
		m.svc.SetSoftwareNotes(after)
	}
	return m, cmd
}

func (m SoftwareModel) View() string {
	var b strings.Builder
	hint := ""
	switch {
	case m.area.Focused():
		hint = theme.Ok.Render("editing")
	case m.readOnly:
		hint = theme.Muted.Render("read-only")
	}
	b.WriteString(shared.Header(theme.Title.Render(" "+messages.ViewSoftware.Title(m.locale)), hint, m.width))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(" " + messages.ViewSoftware.Description(m.locale)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(1).Render(m.area.View()))

	var hints string
	if m.area.Focused() {
		hints = shared.Hints(shared.HelpBind{Key: "esc", Desc: "stop editing"})
	} else {
		hints = shared.Hints(
			shared.HelpBind{Key: "e", Desc: "edit"},
			shared.HelpBind{Key: "esc", Desc: "dashboard"},
		)
	}
	return shared.CenterWithBottomHints(b.String(), lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hints), m.height)
}
