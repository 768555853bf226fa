// Package cli wires configuration, storage and the suggestion gateway into
// a cobra command tree. Running the binary with no subcommand starts the TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lifeplanner/internal/config"
	"lifeplanner/internal/kv"
	"lifeplanner/internal/logs"
	"lifeplanner/internal/planner/service"
	"lifeplanner/internal/suggest"
)

// App carries the state shared by every command.
type App struct {
	Flags config.CLIFlags

	Config  *config.Config
	Store   kv.Store
	Planner service.PlannerService
	Gateway suggest.Gateway

	// Now and RunTUI are replaceable in tests.
	Now    func() time.Time
	RunTUI func(ctx context.Context, app *App) error
}

// NewRootCmd builds the lifeplanner command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.RunTUI == nil {
		app.RunTUI = runTUI
	}

	cmd := &cobra.Command{
		Use:          "lifeplanner",
		Short:        "Personal daily planner: schedule, meals, tasks and notes",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  lifeplanner

  # Open straight into the nutrition view
  lifeplanner --view nutrition

  # Scriptable commands
  lifeplanner task add "Gym" --time 07:30
  lifeplanner meal add "Oatmeal" --type breakfast
  lifeplanner suggest meals "chicken, rice" --plain
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs.Logger.Println("Starting app in TUI mode")
			return app.RunTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.open()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	cmd.PersistentFlags().StringVar(&app.Flags.DataDir, "data-dir", "", "Directory holding the planner document and logs")
	cmd.PersistentFlags().StringVar(&app.Flags.Storage, "storage", "", "Storage backend (file|sqlite)")
	cmd.PersistentFlags().StringVar(&app.Flags.Locale, "locale", "", "Language for prompts and messages (ru|en)")
	cmd.Flags().StringVar(&app.Flags.DefaultView, "view", "", "Initial view: dashboard, software, schedule, nutrition, important, secondary, month, notes")

	cmd.AddCommand(newTaskCmd(app))
	cmd.AddCommand(newMealCmd(app))
	cmd.AddCommand(newNoteCmd(app))
	cmd.AddCommand(newSoftCmd(app))
	cmd.AddCommand(newDueCmd(app))
	cmd.AddCommand(newSuggestCmd(app))
	cmd.AddCommand(newRemindCmd(app))

	return cmd
}

// open loads config and opens the store, planner and gateway. Pieces that
// are already set (tests) are kept.
func (a *App) open() error {
	if a.Config == nil {
		cfg, err := config.Load(a.Flags)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.Config = cfg

		if err := config.EnsureConfigFile(); err != nil {
			logs.Logger.Printf("Warning: could not create config file: %v", err)
		}
	}

	if a.Planner == nil {
		if err := a.Config.EnsureDataDir(); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
		if err := logs.Initialize(a.Config.DataDir); err != nil {
			logs.Logger.Printf("Warning: could not initialize logger: %v", err)
		}

		store, err := kv.Open(a.Config.Storage, a.Config.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		a.Store = store
		a.Planner = service.NewPlannerService(store)
	}

	if a.Gateway == nil {
		client := suggest.NewGeminiClient(a.Config.APIKey,
			suggest.WithBaseURL(a.Config.APIBaseURL),
			suggest.WithModel(a.Config.Model),
		)
		a.Gateway = suggest.NewGateway(client, a.Config.Locale)
	}
	return nil
}

func (a *App) close() error {
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
		a.Store = nil
	}
	errs = append(errs, logs.Close())
	return errors.Join(errs...)
}
