package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifeplanner/internal/planner/data"
)

func newDueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "due [HH:MM]",
		Short: "Show the first pending task due at a time (default: now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := data.ClockString(app.Now())
			if len(args) == 1 {
				clock = args[0]
				if !data.ValidTime(clock) {
					return fmt.Errorf("invalid time %q (want HH:MM)", clock)
				}
			}

			out := cmd.OutOrStdout()
			task, ok := app.Planner.DueNow(clock)
			if !ok {
				fmt.Fprintf(out, "Nothing due at %s.\n", clock)
				return nil
			}
			printTask(out, task)
			return nil
		},
	}
}
