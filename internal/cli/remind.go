package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lifeplanner/internal/kv"
	"lifeplanner/internal/logs"
	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/reminder"
)

// reloadingSource rereads the stored document on every check so tasks added
// by other invocations are seen. It never writes to the store; an unreadable
// document is logged once per distinct error and yields no reminders.
type reloadingSource struct {
	store   kv.Store
	lastErr string
}

func (s *reloadingSource) DueNow(clock string) (data.Task, bool) {
	raw, err := s.store.Get(data.StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return data.Task{}, false
	}
	var doc data.AppData
	if err == nil {
		doc, err = data.Decode([]byte(raw))
	}
	if err != nil {
		if msg := err.Error(); msg != s.lastErr {
			s.lastErr = msg
			logs.Logger.Printf("Reminder check skipped: %v", err)
		}
		return data.Task{}, false
	}
	s.lastErr = ""
	return data.FindDue(doc, clock)
}

func newRemindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Print reminders for due tasks until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printer := reminder.NotifierFunc(func(title, body string) error {
				_, err := fmt.Fprintf(out, "\a%s %s: %s\n", app.Now().Format("15:04"), title, body)
				return err
			})

			var notifier reminder.Notifier
			if app.Config.Notifications {
				notifier = reminder.Multi(reminder.LogNotifier{}, printer)
			}
			var src reminder.DueSource = app.Planner
			if app.Store != nil {
				src = &reloadingSource{store: app.Store}
			}
			checker := reminder.NewChecker(src, notifier,
				reminder.WithClock(app.Now),
				reminder.WithTitle(reminder.Title(app.Config.Locale)),
			)

			sched, err := reminder.Start(checker, app.Config.ReminderSchedule)
			if err != nil {
				return err
			}
			defer sched.Stop()

			fmt.Fprintf(out, "Watching for reminders (%s). Press Ctrl+C to stop.\n", app.Config.ReminderSchedule)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}
}
