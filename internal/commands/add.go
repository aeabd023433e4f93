package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/slidegym/internal/models"
	"github.com/balkashynov/slidegym/internal/parser"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [exercise]",
		Short: "Add an exercise to a weekday",
		Long: `Add an exercise with its weight and reps.

Modes:
  Interactive: slidegym add (opens the editor in the week view)
  Quick: slidegym add "Squat" --weight 40 --reps 10 --day monday
  Smart parsing: slidegym add "Squat 40kg x10 @monday"

Smart parsing syntax:
  40kg, 42.5 kg  - Weight in kilograms
  x10, 10 reps   - Repetitions
  @monday, @wed  - Weekday (defaults to the configured start day)

Flags take precedence over parsed values.`,
		Args: cobra.ArbitraryArgs,
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			out := cmd.OutOrStdout()

			// No args, go interactive
			if len(args) == 0 && !anyChanged(cmd, "weight", "reps") {
				if day, ok, err := dayFlag(cmd); err != nil {
					return err
				} else if ok {
					a.ctrl.SelectDay(day)
				}
				a.ctrl.RequestCreate()
				return runTUI(cmd, a)
			}

			parsed := parser.ParseExercise(strings.Join(args, " "))
			if len(parsed.Errors) > 0 {
				return fmt.Errorf("%s", strings.Join(parsed.Errors, ", "))
			}

			name, weight, reps := parsed.Name, parsed.Weight, parsed.Reps
			if cmd.Flags().Changed("weight") {
				w, _ := cmd.Flags().GetString("weight")
				weight = parser.ParseWeight(w)
			}
			if cmd.Flags().Changed("reps") {
				r, _ := cmd.Flags().GetString("reps")
				reps = parser.ParseReps(r)
			}

			day := a.ctrl.Snapshot().SelectedDay
			if parsed.Day != nil {
				day = *parsed.Day
			}
			if d, ok, err := dayFlag(cmd); err != nil {
				return err
			} else if ok {
				day = d
			}

			a.ctrl.SelectDay(day)
			a.ctrl.RequestCreate()
			saved, err := a.ctrl.Submit(cmd.Context(), name, weight, reps)
			if err != nil {
				return err
			}
			if !saved {
				return printValidation(out, a.ctrl.Validate(name, weight, reps))
			}

			// newest first, so the new exercise heads the list
			ex := a.ctrl.Snapshot().Exercises(day)[0]
			fmt.Fprintf(out, "✅ Added exercise #%d to %s: %s (%s)\n", ex.ID, day.DisplayName(), ex.Name, ex.Summary())
			return nil
		}),
	}

	cmd.Flags().StringP("day", "d", "", "Weekday: monday, tue, quarta, ...")
	cmd.Flags().StringP("weight", "w", "", "Weight in kg")
	cmd.Flags().StringP("reps", "r", "", "Repetitions")

	return cmd
}

// dayFlag reads --day, reporting whether it was set.
func dayFlag(cmd *cobra.Command) (models.WeekDay, bool, error) {
	if !cmd.Flags().Changed("day") {
		return models.Monday, false, nil
	}
	s, _ := cmd.Flags().GetString("day")
	day, err := models.ParseWeekDay(s)
	if err != nil {
		return models.Monday, false, fmt.Errorf("invalid day '%s'. Use a weekday name like monday or mon", s)
	}
	return day, true, nil
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}
