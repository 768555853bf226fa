// Package assistant is the suggestion panel opened from the schedule and
// nutrition views.
package assistant

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/logs"
	"lifeplanner/internal/suggest"
	"lifeplanner/internal/tui/messages"
	"lifeplanner/internal/tui/shared"
	"lifeplanner/internal/tui/theme"
)

// Kind selects which suggestion the panel asks for.
type Kind int

const (
	KindSchedule Kind = iota
	KindMeals
)

// ResponseMsg carries a finished suggestion back to the panel.
type ResponseMsg struct {
	Kind Kind
	Text string
}

// ClosedMsg is sent when the panel is dismissed.
type ClosedMsg struct{}

type panelText struct {
	title, intro, placeholder string
}

var texts = map[Kind][2]panelText{
	KindSchedule: {
		{"AI Планировщик Расписания", "Опишите ваши задачи, и я составлю для вас расписание.", "Например: Сходить в зал, написать отчет, встреча с Анной..."},
		{"AI Schedule Planner", "Describe your tasks and I will build a schedule.", "e.g. Gym, write the report, meet Anna..."},
	},
	KindMeals: {
		{"AI Диетолог", "Напишите, какие продукты у вас есть, и я предложу меню.", "Например: Есть курица, рис, яйца..."},
		{"AI Nutritionist", "List what food you have and I will suggest a menu.", "e.g. chicken, rice, eggs..."},
	},
}

// Model is the assistant panel. The prompt survives closing and reopening;
// the previous response does not.
type Model struct {
	ctx    context.Context
	gw     suggest.Gateway
	locale string
	kind   Kind

	prompt   textarea.Model
	spinner  spinner.Model
	viewport viewport.Model

	loading  bool
	response string

	width  int
	height int
}

// New creates a closed panel. ctx bounds every suggestion request.
func New(ctx context.Context, gw suggest.Gateway, locale string) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{
		ctx:      ctx,
		gw:       gw,
		locale:   locale,
		prompt:   ta,
		spinner:  sp,
		viewport: viewport.New(60, 10),
	}
}

func (m Model) text() panelText {
	t := texts[m.kind]
	if strings.HasPrefix(strings.ToLower(m.locale), "en") {
		return t[1]
	}
	return t[0]
}

// Open prepares the panel for kind and focuses the prompt.
func (m *Model) Open(kind Kind) tea.Cmd {
	m.kind = kind
	m.response = ""
	m.viewport.SetContent("")
	m.prompt.Placeholder = m.text().placeholder
	return m.prompt.Focus()
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	inner := max(20, min(w-8, 90))
	m.prompt.SetWidth(inner)
	m.viewport.Width = inner
	m.viewport.Height = max(3, h-16)
	m.renderResponse()
}

// Loading reports whether a request is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Response returns the last suggestion text.
func (m Model) Response() string {
	return m.response
}

// Prompt returns the current prompt text.
func (m Model) Prompt() string {
	return m.prompt.Value()
}

func (m Model) request(prompt string) tea.Cmd {
	ctx, gw, kind := m.ctx, m.gw, m.kind
	return func() tea.Msg {
		var text string
		switch kind {
		case KindMeals:
			text = gw.SuggestMealPlan(ctx, prompt)
		default:
			text = gw.SuggestSchedule(ctx, []string{prompt})
		}
		return ResponseMsg{Kind: kind, Text: text}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResponseMsg:
		m.loading = false
		m.response = msg.Text
		m.renderResponse()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.loading {
				return m, nil
			}
			m.prompt.Blur()
			return m, func() tea.Msg { return ClosedMsg{} }

		case "ctrl+s":
			prompt := strings.TrimSpace(m.prompt.Value())
			if m.loading || prompt == "" {
				return m, nil
			}
			m.loading = true
			m.response = ""
			m.viewport.SetContent("")
			return m, tea.Batch(m.spinner.Tick, m.request(prompt))

		case "ctrl+y":
			if m.response == "" {
				return m, nil
			}
			if err := clipboard.WriteAll(m.response); err != nil {
				logs.Logger.Printf("Clipboard error: %v", err)
				return m, messages.StatusError("Could not copy to clipboard")
			}
			return m, messages.Status("Copied to clipboard")

		case "pgdown", "ctrl+d":
			m.viewport.ScrollDown(m.viewport.Height / 2)
			return m, nil
		case "pgup", "ctrl+u":
			m.viewport.ScrollUp(m.viewport.Height / 2)
			return m, nil
		}
	}

	if m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) renderResponse() {
	if m.response == "" {
		m.viewport.SetContent("")
		return
	}
	rendered := m.response
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(20, m.viewport.Width-2)),
	)
	if err == nil {
		if out, err := r.Render(m.response); err == nil {
			rendered = strings.TrimRight(out, "\n")
		}
	}
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}

func (m Model) View() string {
	t := m.text()

	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(t.title) + "\n")
	b.WriteString(theme.Muted.Render(t.intro) + "\n\n")
	b.WriteString(m.prompt.View() + "\n\n")

	switch {
	case m.loading:
		thinking := "Думаю..."
		if strings.HasPrefix(strings.ToLower(m.locale), "en") {
			thinking = "Thinking..."
		}
		b.WriteString(m.spinner.View() + " " + thinking + "\n")
	case m.response != "":
		b.WriteString(m.viewport.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(shared.Hints(
		shared.HelpBind{Key: "ctrl+s", Desc: "generate"},
		shared.HelpBind{Key: "ctrl+y", Desc: "copy"},
		shared.HelpBind{Key: "pgup/pgdn", Desc: "scroll"},
		shared.HelpBind{Key: "esc", Desc: "close"},
	))

	box := theme.ModalBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
