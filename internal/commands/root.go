package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/slidegym/internal/config"
	"github.com/balkashynov/slidegym/internal/db"
	"github.com/balkashynov/slidegym/internal/logging"
	"github.com/balkashynov/slidegym/internal/models"
	"github.com/balkashynov/slidegym/internal/session"
	"github.com/balkashynov/slidegym/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions are the global flags.
type rootOptions struct {
	dbPath     string
	configPath string
	now        func() time.Time
}

// app is everything a command needs for one run.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	store *db.Store
	ctrl  *session.Controller

	closers []io.Closer
}

func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// open loads config, sets up logging and the store, and loads the week.
func (o *rootOptions) open(ctx context.Context) (*app, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}

	a := &app{cfg: cfg}

	log, logFile, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	a.log = log
	a.closers = append(a.closers, logFile)

	a.store = db.NewStore(cfg.DBPath,
		db.WithLogger(log),
		db.WithLogLevel(logging.GormLevel(cfg.LogLevel)))
	a.closers = append(a.closers, a.store)

	a.ctrl = session.New(a.store,
		session.WithLogger(log),
		session.WithSelectedDay(config.StartDay(cfg, o.now())))

	if err := a.ctrl.ReloadAll(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

// withApp wraps a command function to open the app first and close it after
func (o *rootOptions) withApp(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := o.open(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		a.log.Debug("running command", slog.String("command", cmd.CommandPath()), slog.String("db", a.cfg.DBPath))
		return fn(cmd, args, a)
	}
}

// runTUI hands the session to the interactive week view.
func runTUI(cmd *cobra.Command, a *app) error {
	return tui.RunWeekTUI(cmd.Context(), a.ctrl, a.cfg.LogFile)
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	rootCmd := &cobra.Command{
		Use:   "slidegym",
		Short: "A weekly workout planner for the terminal",
		Long: `slidegym plans your week of exercises, one list per weekday.
Add exercises with their weight and reps, tick them off as you train,
and browse the week in an interactive view.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: opts.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			return runTUI(cmd, a)
		}),
	}

	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/slidegym/config.yaml)")

	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newDoneCmd(opts))
	rootCmd.AddCommand(newEditCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newResetCmd(opts))
	rootCmd.SetHelpCommand(newHelpCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// ExecuteContext runs the root command with ctx
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slidegym %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// parseID reads an exercise id argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid exercise ID '%s'", arg)
	}
	return id, nil
}

// findExercise looks id up in the loaded week
func findExercise(a *app, id int64) (models.Exercise, error) {
	ex, ok := a.ctrl.Snapshot().Find(id)
	if !ok {
		return models.Exercise{}, fmt.Errorf("exercise #%d not found", id)
	}
	return ex, nil
}

// printValidation writes the reasons an exercise was rejected and returns
// the error the command exits with.
func printValidation(w io.Writer, err error) error {
	if err == nil {
		return fmt.Errorf("exercise not saved")
	}
	fmt.Fprintf(w, "❌ Invalid exercise: %v\n", err)
	return fmt.Errorf("invalid exercise")
}
