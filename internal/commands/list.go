package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/slidegym/internal/models"
	"github.com/balkashynov/slidegym/internal/session"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ls [day]",
		Aliases: []string{"list"},
		Short:   "List exercises",
		Long:    "List the exercises of one weekday, or of every day that has any.",
		Args:    cobra.MaximumNArgs(1),
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			snap := a.ctrl.Snapshot()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				day, err := models.ParseWeekDay(args[0])
				if err != nil {
					return fmt.Errorf("invalid day '%s'. Use a weekday name like monday or mon", args[0])
				}
				printDay(out, snap, day)
				return nil
			}

			printWeek(out, snap)
			return nil
		}),
	}
}

// printWeek prints every day that has exercises
func printWeek(w io.Writer, snap *session.Snapshot) {
	printed := 0
	for _, day := range models.WeekDays() {
		if len(snap.Exercises(day)) == 0 {
			continue
		}
		if printed > 0 {
			fmt.Fprintln(w)
		}
		printDay(w, snap, day)
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(w, `No exercises found. Use 'slidegym add "Squat 40kg x10 @monday"' to plan your first one.`)
	}
}

// printDay prints one day as a table, newest exercise first
func printDay(w io.Writer, snap *session.Snapshot, day models.WeekDay) {
	done, total := snap.Progress(day)
	fmt.Fprintf(w, "%s (%d/%d done)\n", day.DisplayName(), done, total)

	list := snap.Exercises(day)
	if len(list) == 0 {
		fmt.Fprintln(w, "  no exercises")
		return
	}

	fmt.Fprintf(w, "%-5s %-4s %-30s %8s %5s\n", "ID", "DONE", "NAME", "WEIGHT", "REPS")
	fmt.Fprintln(w, strings.Repeat("-", 56))

	for _, ex := range list {
		check := "[ ]"
		if ex.Completed {
			check = "[x]"
		}

		name := truncate(ex.Name, 30)

		fmt.Fprintf(w, "%-5d %-4s %-30s %8s %5d\n",
			ex.ID,
			check,
			name,
			models.FormatWeight(ex.Weight)+"kg",
			ex.Reps)
	}
}

// truncate shortens s to max runes, ending in "..."
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
