package shared

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/tui/theme"
)

var inputBoxStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Primary).
	Padding(0, 1)

// TextInputModel wraps bubbles/textinput with validation
type TextInputModel struct {
	Input     textinput.Model
	Prompt    string
	Validator func(string) error
	Error     string
	Width     int
}

// TextInputResultMsg is sent when input is confirmed or cancelled
type TextInputResultMsg struct {
	Value     string
	Cancelled bool
}

// NewTextInput creates a focused text input
func NewTextInput(prompt, placeholder string, validator func(string) error) *TextInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	return &TextInputModel{
		Input:     ti,
		Prompt:    prompt,
		Validator: validator,
	}
}

// NewTimeInput creates a text input for an optional HH:MM time.
func NewTimeInput(prompt string) *TextInputModel {
	ti := NewTextInput(prompt, "HH:MM", ValidateTime)
	ti.Input.CharLimit = 5
	return ti
}

// Update handles enter/esc and forwards everything else to the input.
func (m *TextInputModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(m.Input.Value())
			if m.Validator != nil {
				if err := m.Validator(value); err != nil {
					m.Error = err.Error()
					return nil
				}
			}
			return func() tea.Msg {
				return TextInputResultMsg{Value: value}
			}
		case "esc":
			return func() tea.Msg {
				return TextInputResultMsg{Cancelled: true}
			}
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.Error = ""
	}
	return cmd
}

// View renders the prompt, the input and any validation error in a box.
func (m *TextInputModel) View() string {
	content := theme.Subtitle.Render(m.Prompt+": ") + m.Input.View() + "\n"
	if m.Error != "" {
		content += theme.Error.Render("Error: "+m.Error) + "\n"
	}
	content += theme.Muted.Render("[enter] confirm  [esc] cancel")
	return inputBoxStyle.Width(m.Width).Render(content)
}

// Value returns the current input value
func (m *TextInputModel) Value() string {
	return m.Input.Value()
}

// SetWidth sets both the outer box and inner input widths
func (m *TextInputModel) SetWidth(w int) {
	// Account for border (2) and padding (2)
	m.Width = w - 4
	m.Input.Width = m.Width - lipgloss.Width(m.Prompt+": ") - 1
}

// ValidateRequired rejects blank input.
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value required")
	}
	return nil
}

// ValidateTime accepts an empty value or a 24h HH:MM time.
func ValidateTime(s string) error {
	if s == "" || data.ValidTime(s) {
		return nil
	}
	return errors.New("invalid time, use HH:MM")
}

// ValidateDate accepts an empty value or a yyyy-MM-dd date.
func ValidateDate(s string) error {
	if s == "" || data.ValidDate(s) {
		return nil
	}
	return errors.New("invalid date format, use yyyy-MM-dd")
}
