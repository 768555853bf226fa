package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newSoftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "soft",
		Aliases: []string{"software"},
		Short:   "Show or replace the software notes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the software notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := app.Planner.Snapshot().SoftwareNotes
			if text == "" {
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			if !strings.HasSuffix(text, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <text|->",
		Short: "Replace the software notes (\"-\" reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}
			app.Planner.SetSoftwareNotes(text)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d characters\n", len([]rune(text)))
			return nil
		},
	})

	return cmd
}
