package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"lifeplanner/internal/tui/messages"
)

// ProgramNotifier delivers reminders into a running program as a banner.
type ProgramNotifier struct {
	Program *tea.Program
}

func (n ProgramNotifier) Notify(title, body string) error {
	if n.Program != nil {
		n.Program.Send(messages.ReminderMsg{Title: title, Body: body})
	}
	return nil
}
