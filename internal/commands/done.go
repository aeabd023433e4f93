package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done [exercise-id]",
		Short: "Toggle an exercise between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ex, err := findExercise(a, id)
			if err != nil {
				return err
			}

			if err := a.ctrl.ToggleCompletion(cmd.Context(), ex); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ex.Completed {
				fmt.Fprintf(out, "↩️  Marked exercise #%d as not done: %s\n", ex.ID, ex.Name)
			} else {
				fmt.Fprintf(out, "✅ Marked exercise #%d as done: %s\n", ex.ID, ex.Name)
			}
			return nil
		}),
	}
}
