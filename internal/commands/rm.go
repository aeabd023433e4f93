package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm [exercise-id]",
		Aliases: []string{"delete"},
		Short:   "Delete an exercise",
		Args:    cobra.ExactArgs(1),
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ex, err := findExercise(a, id)
			if err != nil {
				return err
			}

			if err := a.ctrl.Remove(cmd.Context(), ex); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted exercise #%d from %s: %s\n", ex.ID, ex.Day.DisplayName(), ex.Name)
			return nil
		}),
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every exercise and recreate the database",
		Args:  cobra.NoArgs,
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("reset deletes every exercise; run again with --yes to confirm")
			}

			if err := a.store.Reset(cmd.Context()); err != nil {
				return err
			}
			if err := a.ctrl.ReloadAll(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "🧹 All exercises deleted.")
			return nil
		}),
	}

	cmd.Flags().Bool("yes", false, "Confirm the reset")

	return cmd
}
