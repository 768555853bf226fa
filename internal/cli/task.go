package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"lifeplanner/internal/planner/data"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Manage schedule, important and secondary tasks",
	}
	cmd.AddCommand(newTaskAddCmd(app))
	cmd.AddCommand(newTaskListCmd(app))
	cmd.AddCommand(newTaskDoneCmd(app))
	cmd.AddCommand(newTaskDeleteCmd(app))
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var target, clock, date string

	cmd := &cobra.Command{
		Use:     "add <title>",
		Aliases: []string{"a"},
		Short:   "Add a task",
		Example: `  lifeplanner task add "Gym" --time 07:30
  lifeplanner task add "Pay rent" --target important --date 2026-03-01`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := data.ParseTarget(target)
			if err != nil {
				return err
			}
			if clock != "" && !data.ValidTime(clock) {
				return fmt.Errorf("invalid time %q (want HH:MM)", clock)
			}
			if date != "" && !data.ValidDate(date) {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}

			task, ok := app.Planner.AddDatedTask(t, strings.Join(args, " "), clock, date)
			if !ok {
				return fmt.Errorf("task title required")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added: %s\n", taskLine(task))
			fmt.Fprintf(out, "ID: %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "T", "schedule", "Collection: schedule, important or secondary")
	cmd.Flags().StringVar(&clock, "time", "", "Reminder time (HH:MM)")
	cmd.Flags().StringVar(&date, "date", "", "Date for the month view (YYYY-MM-DD)")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var target string
	var pending bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := data.Targets
			if target != "" {
				t, err := data.ParseTarget(target)
				if err != nil {
					return err
				}
				targets = []data.Target{t}
			}

			doc := app.Planner.Snapshot()
			out := cmd.OutOrStdout()
			total := 0
			for _, t := range targets {
				var tasks []data.Task
				for _, task := range doc.Tasks(t) {
					if pending && task.Completed {
						continue
					}
					tasks = append(tasks, task)
				}
				if len(tasks) == 0 {
					continue
				}
				if len(targets) > 1 {
					fmt.Fprintf(out, "%s:\n", t)
				}
				for _, task := range tasks {
					printTask(out, task)
				}
				total += len(tasks)
			}

			if total == 0 {
				fmt.Fprintln(out, "No tasks found.")
				return nil
			}
			fmt.Fprintf(out, "\n%d task(s)\n", total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "T", "", "Only list one collection")
	cmd.Flags().BoolVar(&pending, "pending", false, "Hide completed tasks")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "done <task-id>",
		Aliases: []string{"do", "d"},
		Short:   "Mark a task as complete",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, task, err := findTaskByPartialID(app.Planner.Snapshot(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if task.Completed {
				fmt.Fprintf(out, "Task already completed: %s\n", task.Title)
				return nil
			}
			app.Planner.ToggleTask(target, task.ID)
			fmt.Fprintf(out, "Completed: %s\n", task.Title)
			return nil
		},
	}
}

func newTaskDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <task-id>",
		Aliases: []string{"rm", "del"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, task, err := findTaskByPartialID(app.Planner.Snapshot(), args[0])
			if err != nil {
				return err
			}
			app.Planner.DeleteTask(target, task.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", task.Title)
			return nil
		},
	}
}

func taskLine(t data.Task) string {
	var sb strings.Builder
	if t.Time != "" {
		sb.WriteString(t.Time + " ")
	}
	sb.WriteString(t.Title)
	if t.Date != "" {
		sb.WriteString(" (" + t.Date + ")")
	}
	return sb.String()
}

func printTask(w io.Writer, t data.Task) {
	status := " "
	if t.Completed {
		status = "x"
	}
	fmt.Fprintf(w, "[%s] %s %s\n", shortID(t.ID), status, taskLine(t))
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

// matchesID accepts the full id or a prefix of at least four characters.
func matchesID(id, partialID string) bool {
	return id == partialID || (len(partialID) >= 4 && strings.HasPrefix(id, partialID))
}

func findTaskByPartialID(doc data.AppData, partialID string) (data.Target, data.Task, error) {
	type match struct {
		target data.Target
		task   data.Task
	}
	var matches []match
	for _, target := range data.Targets {
		for _, t := range doc.Tasks(target) {
			if matchesID(t.ID, partialID) {
				matches = append(matches, match{target, t})
			}
		}
	}

	if len(matches) == 0 {
		return "", data.Task{}, fmt.Errorf("no task found with ID: %s", partialID)
	}
	if len(matches) > 1 {
		return "", data.Task{}, fmt.Errorf("ambiguous ID %s matches %d tasks", partialID, len(matches))
	}
	return matches[0].target, matches[0].task, nil
}
