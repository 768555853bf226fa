package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/tui/messages"
	"lifeplanner/internal/tui/shared"
	"lifeplanner/internal/tui/theme"
)

type notesMode int

const (
	modeList notesMode = iota
	modeSearch
	modeCompose
)

// NotesModel lists notes newest first, with search and a compose form.
type NotesModel struct {
	svc    service.PlannerService
	locale string

	notes    []data.Note
	filtered []int
	selected int
	offset   int

	mode        notesMode
	searchInput textinput.Model
	searchQuery string

	titleInput textinput.Model
	bodyInput  textarea.Model
	focusBody  bool
	composeErr string

	confirm  *shared.ConfirmationModal
	deleteID string

	width  int
	height int
}

func NewNotesModel(svc service.PlannerService, locale string) NotesModel {
	si := textinput.New()
	si.Placeholder = "Search notes..."
	si.CharLimit = 100
	si.Width = 40

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Write your thoughts..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	m := NotesModel{
		svc:         svc,
		locale:      locale,
		searchInput: si,
		titleInput:  ti,
		bodyInput:   ta,
	}
	m.Refresh()
	return m
}

func (m *NotesModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.titleInput.Width = max(10, min(w-8, 70))
	m.bodyInput.SetWidth(max(10, min(w-6, 72)))
	m.bodyInput.SetHeight(max(3, h/2))
}

// Refresh reloads notes from the planner and reapplies the filter.
func (m *NotesModel) Refresh() {
	m.notes = m.svc.Snapshot().Notes
	m.applyFilter()
}

// IsInModalState reports whether a text field or confirmation owns the keyboard.
func (m NotesModel) IsInModalState() bool {
	return m.mode != modeList || m.confirm != nil
}

// Visible returns the notes matching the current search, in display order.
func (m NotesModel) Visible() []data.Note {
	out := make([]data.Note, len(m.filtered))
	for i, idx := range m.filtered {
		out[i] = m.notes[idx]
	}
	return out
}

func (m *NotesModel) applyFilter() {
	if m.searchQuery == "" {
		m.filtered = make([]int, len(m.notes))
		for i := range m.notes {
			m.filtered[i] = i
		}
	} else {
		haystack := make([]string, len(m.notes))
		for i, n := range m.notes {
			haystack[i] = n.Title + " " + n.Content
		}
		matches := fuzzy.Find(m.searchQuery, haystack)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m NotesModel) selectedNote() (data.Note, bool) {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return data.Note{}, false
	}
	return m.notes[m.filtered[m.selected]], true
}

func (m NotesModel) Update(msg tea.Msg) (NotesModel, tea.Cmd) {
	if res, ok := msg.(shared.ConfirmationResultMsg); ok {
		id := m.deleteID
		m.confirm = nil
		m.deleteID = ""
		if res.Confirmed && id != "" {
			m.svc.DeleteNote(id)
			m.Refresh()
		}
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if m.confirm != nil {
		if ok {
			return m, m.confirm.Update(key)
		}
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		if ok {
			return m.updateSearch(key)
		}
	case modeCompose:
		return m.updateCompose(msg)
	default:
		if ok {
			return m.updateList(key)
		}
	}
	return m, nil
}

func (m NotesModel) updateList(msg tea.KeyMsg) (NotesModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.applyFilter()
			return m, nil
		}
		return m, messages.SwitchView(messages.ViewDashboard)

	case "j", "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		m.scroll()

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		m.scroll()

	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "n", "a":
		m.mode = modeCompose
		m.composeErr = ""
		m.focusBody = false
		m.titleInput.SetValue("")
		m.bodyInput.SetValue("")
		m.bodyInput.Blur()
		cmd := m.titleInput.Focus()
		return m, cmd

	case "D", "delete":
		if note, ok := m.selectedNote(); ok {
			m.deleteID = note.ID
			m.confirm = shared.NewConfirmationModal("Delete note?", note.Title, 50)
		}
	}
	return m, nil
}

func (m NotesModel) updateSearch(msg tea.KeyMsg) (NotesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.searchQuery = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.applyFilter()
		return m, nil

	case "enter":
		m.searchQuery = m.searchInput.Value()
		m.mode = modeList
		m.searchInput.Blur()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	m.applyFilter()
	return m, cmd
}

func (m NotesModel) updateCompose(msg tea.Msg) (NotesModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.mode = modeList
			m.titleInput.Blur()
			m.bodyInput.Blur()
			return m, nil

		case "tab", "shift+tab":
			m.focusBody = !m.focusBody
			var cmd tea.Cmd
			if m.focusBody {
				m.titleInput.Blur()
				cmd = m.bodyInput.Focus()
			} else {
				m.bodyInput.Blur()
				cmd = m.titleInput.Focus()
			}
			return m, cmd

		case "ctrl+s":
			note, ok := m.svc.AddNote(m.titleInput.Value(), m.bodyInput.Value())
			if !ok {
				m.composeErr = "Title and text are both required"
				return m, nil
			}
			m.mode = modeList
			m.titleInput.Blur()
			m.bodyInput.Blur()
			m.searchQuery = ""
			m.Refresh()
			m.selected = 0
			m.offset = 0
			return m, messages.Status(fmt.Sprintf("Saved %q", note.Title))
		}
	}

	var cmd tea.Cmd
	if m.focusBody {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}

func (m NotesModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	var b strings.Builder
	hint := theme.Muted.Render(fmt.Sprintf("%d notes", len(m.notes)))
	if m.searchQuery != "" && m.mode != modeSearch {
		hint = theme.Warn.Render("/"+m.searchQuery) + " " + hint
	}
	b.WriteString(shared.Header(theme.Title.Render(" "+messages.ViewNotes.Title(m.locale)), hint, m.width))
	b.WriteString("\n\n")

	var hints string
	switch m.mode {
	case modeCompose:
		b.WriteString(m.composeView())
		hints = shared.Hints(
			shared.HelpBind{Key: "tab", Desc: "switch field"},
			shared.HelpBind{Key: "ctrl+s", Desc: "save"},
			shared.HelpBind{Key: "esc", Desc: "cancel"},
		)
	default:
		if m.mode == modeSearch {
			b.WriteString(" / " + m.searchInput.View() + "\n\n")
		}
		b.WriteString(m.listView())
		hints = shared.Hints(
			shared.HelpBind{Key: "j/k", Desc: "navigate"},
			shared.HelpBind{Key: "/", Desc: "search"},
			shared.HelpBind{Key: "n", Desc: "new"},
			shared.HelpBind{Key: "D", Desc: "delete"},
			shared.HelpBind{Key: "esc", Desc: "dashboard"},
		)
	}

	return shared.CenterWithBottomHints(b.String(), lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hints), m.height)
}

func (m NotesModel) composeView() string {
	var b strings.Builder
	b.WriteString(" " + theme.Subtitle.Render("New note") + "\n\n")
	b.WriteString(" " + m.titleInput.View() + "\n\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(1).Render(m.bodyInput.View()))
	b.WriteString("\n")
	if m.composeErr != "" {
		b.WriteString(" " + theme.Error.Render(m.composeErr) + "\n")
	}
	return b.String()
}

// listRows is how many titles fit above the selected note's body.
func (m NotesModel) listRows() int {
	return max(1, m.height/2-4)
}

func (m *NotesModel) scroll() {
	m.offset, _ = shared.ScrollWindow(m.selected, m.offset, m.listRows(), len(m.filtered))
}

func (m NotesModel) listView() string {
	if len(m.filtered) == 0 {
		if m.searchQuery != "" {
			return theme.Empty.Render("  No notes match.") + "\n"
		}
		return theme.Empty.Render("  No notes yet. Press n to write one.") + "\n"
	}

	start, end := shared.ScrollWindow(m.selected, m.offset, m.listRows(), len(m.filtered))

	var b strings.Builder
	for i := start; i < end; i++ {
		note := m.notes[m.filtered[i]]
		prefix := "  "
		title := note.Title
		if i == m.selected {
			prefix = theme.Cursor.Render("> ")
			title = theme.Selected.Render(title)
		}
		date := theme.Date.Render(note.Created().Format("2006-01-02"))
		b.WriteString(prefix + date + "  " + shared.Truncate(title, m.width-16) + "\n")
	}

	if note, ok := m.selectedNote(); ok {
		body := lipgloss.NewStyle().
			Width(max(10, min(m.width-6, 80))).
			PaddingLeft(2).
			Render(note.Content)
		b.WriteString("\n" + theme.Muted.Render(body) + "\n")
	}
	return b.String()
}
