package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/slidegym/internal/parser"
)

func newEditCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <exercise-id>",
		Short: "Edit an existing exercise",
		Long: `Edit an existing exercise.

Without flags, opens the week view with the editor pre-filled with the
exercise's current values. With flags, only the given fields change.

Usage:
  slidegym edit 42                     - Edit exercise 42 interactively
  slidegym edit 42 --weight 45 --reps 8`,
		Args: cobra.ExactArgs(1),
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ex, err := findExercise(a, id)
			if err != nil {
				return err
			}

			a.ctrl.SelectDay(ex.Day)
			a.ctrl.RequestEdit(ex)

			if !anyChanged(cmd, "name", "weight", "reps") {
				return runTUI(cmd, a)
			}

			name, weight, reps := ex.Name, ex.Weight, ex.Reps
			if cmd.Flags().Changed("name") {
				n, _ := cmd.Flags().GetString("name")
				name = strings.TrimSpace(n)
			}
			if cmd.Flags().Changed("weight") {
				w, _ := cmd.Flags().GetString("weight")
				weight = parser.ParseWeight(w)
			}
			if cmd.Flags().Changed("reps") {
				r, _ := cmd.Flags().GetString("reps")
				reps = parser.ParseReps(r)
			}

			out := cmd.OutOrStdout()
			saved, err := a.ctrl.Submit(cmd.Context(), name, weight, reps)
			if err != nil {
				return err
			}
			if !saved {
				return printValidation(out, a.ctrl.Validate(name, weight, reps))
			}

			updated, err := findExercise(a, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✏️  Updated exercise #%d: %s (%s)\n", updated.ID, updated.Name, updated.Summary())
			return nil
		}),
	}

	cmd.Flags().StringP("name", "n", "", "New name")
	cmd.Flags().StringP("weight", "w", "", "New weight in kg")
	cmd.Flags().StringP("reps", "r", "", "New repetitions")

	return cmd
}
