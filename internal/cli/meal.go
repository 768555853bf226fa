package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifeplanner/internal/planner/data"
)

func newMealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "meal",
		Aliases: []string{"meals", "m"},
		Short:   "Manage the nutrition log",
	}
	cmd.AddCommand(newMealAddCmd(app))
	cmd.AddCommand(newMealListCmd(app))
	cmd.AddCommand(newMealDeleteCmd(app))
	return cmd
}

func newMealAddCmd(app *App) *cobra.Command {
	var mealType string

	cmd := &cobra.Command{
		Use:     "add <description>",
		Aliases: []string{"a"},
		Short:   "Add a meal",
		Example: `  lifeplanner meal add "Rice and chicken" --type lunch`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mt, err := data.ParseMealType(mealType)
			if err != nil {
				return err
			}
			meal, ok := app.Planner.AddMeal(mt, strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("meal description required")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added: %s: %s\n", meal.Type.Label(app.Config.Locale), meal.Description)
			fmt.Fprintf(out, "ID: %s\n", meal.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&mealType, "type", string(data.Breakfast), "Meal type: breakfast, lunch, dinner or snack")
	return cmd
}

func newMealListCmd(app *App) *cobra.Command {
	var mealType string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List meals grouped by type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := data.MealTypes
			if mealType != "" {
				mt, err := data.ParseMealType(mealType)
				if err != nil {
					return err
				}
				types = []data.MealType{mt}
			}

			out := cmd.OutOrStdout()
			total := 0
			for _, mt := range types {
				meals := app.Planner.MealsByType(mt)
				if len(meals) == 0 {
					continue
				}
				fmt.Fprintf(out, "%s:\n", mt.Label(app.Config.Locale))
				for _, m := range meals {
					fmt.Fprintf(out, "[%s] %s\n", shortID(m.ID), m.Description)
				}
				total += len(meals)
			}

			if total == 0 {
				fmt.Fprintln(out, "No meals found.")
				return nil
			}
			fmt.Fprintf(out, "\n%d meal(s)\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&mealType, "type", "", "Only list one meal type")
	return cmd
}

func newMealDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <meal-id>",
		Aliases: []string{"rm", "del"},
		Short:   "Delete a meal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var matches []data.Meal
			for _, m := range app.Planner.Snapshot().Nutrition {
				if matchesID(m.ID, args[0]) {
					matches = append(matches, m)
				}
			}
			switch len(matches) {
			case 0:
				return fmt.Errorf("no meal found with ID: %s", args[0])
			case 1:
			default:
				return fmt.Errorf("ambiguous ID %s matches %d meals", args[0], len(matches))
			}

			app.Planner.DeleteMeal(matches[0].ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", matches[0].Description)
			return nil
		},
	}
}
