package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show comprehensive help for slidegym",
		Long:  `Display detailed help for all slidegym commands and flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			showCustomHelp(cmd.OutOrStdout())
		},
	}
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
slidegym - Weekly Workout Planner

COMMANDS:

  (no command)            Open the interactive week view

    Quick actions:
      ←/→ h/l       Previous/next day
      1-7           Jump to Monday..Sunday
      ↑/↓ j/k       Navigate exercises
      space/enter   Mark done/not done
      a             Add exercise to the selected day
      e             Edit selected exercise
      d/x           Delete selected exercise
      q             Quit

    Editor:
      tab           Next field
      enter         Save
      esc           Cancel

  add <exercise>          Add an exercise with smart parsing
    -d, --day             Weekday (monday, tue, quarta, ...)
    -w, --weight          Weight in kg
    -r, --reps            Repetitions

    Smart syntax:
      40kg          Weight
      x10, 10 reps  Repetitions
      @monday       Weekday

    Example:
      slidegym add "Bench press 42,5kg x8 @wed"

  ls [day]                List exercises of one day, or the whole week

  edit <id>               Edit an exercise (opens the editor without flags)
    -n, --name            New name
    -w, --weight          New weight
    -r, --reps            New repetitions

  done <id>               Toggle done/not done
  rm <id>                 Delete an exercise
  reset --yes             Delete every exercise
  version                 Show version
  help                    Show this help

GLOBAL FLAGS:

  --db <path>             Database file (default ~/.slidegym/slidegym.db)
  --config <path>         Config file (default ~/.config/slidegym/config.yaml)

`)
}
