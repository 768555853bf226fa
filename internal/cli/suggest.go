package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/suggest"
)

type suggestOutput struct {
	plain bool
	copy  bool
}

func (o *suggestOutput) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.plain, "plain", false, "Strip markdown from the response")
	cmd.Flags().BoolVar(&o.copy, "copy", false, "Copy the response to the clipboard")
}

func (o *suggestOutput) write(cmd *cobra.Command, text string) error {
	if o.plain {
		text = suggest.PlainText(text)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	if o.copy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}
	return nil
}

func newSuggestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suggest",
		Aliases: []string{"ai"},
		Short:   "Ask the assistant for a schedule, meal plan or priorities",
	}
	cmd.AddCommand(newSuggestScheduleCmd(app))
	cmd.AddCommand(newSuggestMealsCmd(app))
	cmd.AddCommand(newSuggestPrioritizeCmd(app))
	return cmd
}

func newSuggestScheduleCmd(app *App) *cobra.Command {
	var o suggestOutput

	cmd := &cobra.Command{
		Use:   "schedule [task...]",
		Short: "Suggest a time-slotted schedule (default: pending schedule tasks)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := args
			if len(tasks) == 0 {
				tasks = pendingTitles(app.Planner.Snapshot(), data.TargetSchedule)
			}
			if len(tasks) == 0 {
				return fmt.Errorf("no tasks to schedule")
			}
			return o.write(cmd, app.Gateway.SuggestSchedule(cmd.Context(), tasks))
		},
	}
	o.bind(cmd)
	return cmd
}

func newSuggestMealsCmd(app *App) *cobra.Command {
	var o suggestOutput

	cmd := &cobra.Command{
		Use:   "meals <preferences>",
		Short: "Suggest a meal plan for the day",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.write(cmd, app.Gateway.SuggestMealPlan(cmd.Context(), strings.Join(args, " ")))
		},
	}
	o.bind(cmd)
	return cmd
}

func newSuggestPrioritizeCmd(app *App) *cobra.Command {
	var o suggestOutput

	cmd := &cobra.Command{
		Use:   "prioritize [task...]",
		Short: "Split tasks into important and secondary (JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := args
			if len(tasks) == 0 {
				doc := app.Planner.Snapshot()
				tasks = append(pendingTitles(doc, data.TargetImportant), pendingTitles(doc, data.TargetSecondary)...)
			}
			if len(tasks) == 0 {
				return fmt.Errorf("no tasks to prioritize")
			}
			return o.write(cmd, app.Gateway.PrioritizeTasks(cmd.Context(), strings.Join(tasks, ", ")))
		},
	}
	o.bind(cmd)
	return cmd
}

func pendingTitles(doc data.AppData, target data.Target) []string {
	var out []string
	for _, t := range doc.Tasks(target) {
		if !t.Completed {
			out = append(out, t.Title)
		}
	}
	return out
}
