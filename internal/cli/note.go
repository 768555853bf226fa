package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifeplanner/internal/notes"
	"lifeplanner/internal/planner/data"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes", "n"},
		Short:   "Manage notes",
	}
	cmd.AddCommand(newNoteAddCmd(app))
	cmd.AddCommand(newNoteListCmd(app))
	cmd.AddCommand(newNoteDeleteCmd(app))
	cmd.AddCommand(newNoteExportCmd(app))
	cmd.AddCommand(newNoteImportCmd(app))
	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:     "add <content>",
		Aliases: []string{"a"},
		Short:   "Add a note",
		Example: `  lifeplanner note add --title "Idea" "Track water intake"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, ok := app.Planner.AddNote(title, strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("note title and content required")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\nID: %s\n", note.Title, note.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title (required)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List notes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			all := app.Planner.Snapshot().Notes
			if len(all) == 0 {
				fmt.Fprintln(out, "No notes found.")
				return nil
			}
			for _, n := range all {
				fmt.Fprintf(out, "[%s] %s  %s\n", shortID(n.ID), n.Created().Format("2006-01-02 15:04"), n.Title)
				if full {
					for _, line := range strings.Split(n.Content, "\n") {
						fmt.Fprintf(out, "        %s\n", line)
					}
				}
			}
			fmt.Fprintf(out, "\n%d note(s)\n", len(all))
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print note content")
	return cmd
}

func newNoteDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <note-id>",
		Aliases: []string{"rm", "del"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var matches []data.Note
			for _, n := range app.Planner.Snapshot().Notes {
				if matchesID(n.ID, args[0]) {
					matches = append(matches, n)
				}
			}
			switch len(matches) {
			case 0:
				return fmt.Errorf("no note found with ID: %s", args[0])
			case 1:
			default:
				return fmt.Errorf("ambiguous ID %s matches %d notes", args[0], len(matches))
			}

			app.Planner.DeleteNote(matches[0].ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", matches[0].Title)
			return nil
		},
	}
}

func newNoteExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every note to <dir> as a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := notes.Export(args[0], app.Planner.Snapshot().Notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d note(s) to %s\n", n, args[0])
			return nil
		},
	}
}

func newNoteImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Add markdown notes found under <dir>",
		Long:  "Add markdown notes found under <dir>. Notes whose id is already present are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := notes.Scan(args[0])
			if err != nil {
				return err
			}
			imported := 0
			for _, n := range found {
				if _, ok := app.Planner.ImportNote(n); ok {
					imported++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d note(s)\n", imported, len(found))
			return nil
		},
	}
}
