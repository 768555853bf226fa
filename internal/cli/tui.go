package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lifeplanner/internal/reminder"
	"lifeplanner/internal/tui"
)

// runTUI starts the interactive program with reminders delivered as banners.
func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.NewAppModel(ctx, app.Config, app.Planner, app.Gateway, app.Now)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	var notifier reminder.Notifier
	if app.Config.Notifications {
		notifier = reminder.Multi(reminder.LogNotifier{}, tui.ProgramNotifier{Program: p})
	}
	checker := reminder.NewChecker(app.Planner, notifier,
		reminder.WithClock(app.Now),
		reminder.WithTitle(reminder.Title(app.Config.Locale)),
	)
	sched, err := reminder.Start(checker, app.Config.ReminderSchedule)
	if err != nil {
		return err
	}
	defer sched.Stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
