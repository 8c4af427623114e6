// Package cli wires the leaguectl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/jam-league/internal/app"
	"github.com/riskibarqy/jam-league/internal/config"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/jam-league/internal/observability"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
)

const msgCloseFailed = "Something went wrong with closing the connection. Were you connected to begin with?"

// exitError carries a specific process exit status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type root struct {
	cmd    *cobra.Command
	stderr io.Writer

	dbURL    string
	store    string
	logLevel string

	cfg      config.Config
	logger   *logging.Logger
	closeLog func() error
	shutdown func(context.Context) error

	openStore func(context.Context, config.Config, *logging.Logger) (*app.Store, error)
}

// Execute runs leaguectl with the process arguments and returns the exit
// status. SIGINT and SIGTERM cancel the command context.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newRoot(os.Stdin, os.Stdout, os.Stderr)
	return r.execute(ctx, os.Args[1:])
}

func newRoot(stdin io.Reader, stdout, stderr io.Writer) *root {
	r := &root{stderr: stderr, openStore: app.OpenStore}

	cmd := &cobra.Command{
		Use:   "leaguectl",
		Short: "Administer the JAM Sports and Rec league database",
		Long: `leaguectl administers the JAM Sports and Rec league database.

The records console looks up players, adds players, officials and
coordinators, promotes captains, moves or cancels games and adjusts
salaries. The cleaning console installs and runs the routine that removes
seasons and teams below their minimum membership.

Examples:
  leaguectl records
  leaguectl clean --store memory
  leaguectl prune --target team --dry-run --output json`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&r.dbURL, "db-url", "", "database URL (overrides DB_URL)")
	cmd.PersistentFlags().StringVar(&r.store, "store", "", "store driver: postgres or memory (overrides STORE_DRIVER)")
	cmd.PersistentFlags().StringVar(&r.logLevel, "log-level", "", "debug, info, warn or error (overrides APP_LOG_LEVEL)")

	cmd.AddCommand(
		r.newRecordsCommand(),
		r.newCleanCommand(),
		r.newPruneCommand(),
		r.newRoutineCommand(),
	)

	r.cmd = cmd
	return r
}

func (r *root) execute(ctx context.Context, args []string) int {
	r.cmd.SetArgs(args)
	err := r.cmd.ExecuteContext(ctx)
	r.teardown()

	if err == nil {
		return 0
	}
	var exitErr *exitError
	if crerr.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintln(r.stderr, err)
	return 1
}

func (r *root) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if r.dbURL != "" {
		cfg.DBURL = r.dbURL
	}
	if r.store != "" {
		driver, err := config.ParseStoreDriver(r.store)
		if err != nil {
			return err
		}
		cfg.StoreDriver = driver
	}
	if r.logLevel != "" {
		cfg.LogLevel = config.ParseLogLevel(r.logLevel)
	}
	r.cfg = cfg

	if cfg.LogFile == "" {
		r.logger = logging.NewJSON(cfg.LogLevel, r.stderr)
		r.closeLog = r.logger.Sync
	} else {
		logger, closeLog, err := logging.Open(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return crerr.Wrap(err, "open log file")
		}
		r.logger, r.closeLog = logger, closeLog
	}
	logging.SetDefault(r.logger)

	shutdown, err := observability.InitUptrace(cfg, r.logger)
	if err != nil {
		return err
	}
	r.shutdown = shutdown

	r.logger.DebugContext(cmd.Context(), "command starting", "command", cmd.Name(), "store", cfg.StoreDriver)
	return nil
}

func (r *root) teardown() {
	if r.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := r.shutdown(ctx); err != nil {
			r.logger.Warn("tracing shutdown failed", "error", err)
		}
		cancel()
	}
	if r.closeLog != nil {
		_ = r.closeLog()
	}
}

// withServices opens the store, runs fn and closes the store. A store that
// cannot be opened is reported and ends the command with status 0; a close
// failure ends it with status -1.
func (r *root) withServices(ctx context.Context, fn func(context.Context, *app.Services) error) error {
	store, err := r.openStore(ctx, r.cfg, r.logger)
	if err != nil {
		r.logger.ErrorContext(ctx, "open store failed", "store", r.cfg.StoreDriver, "error", err)
		fmt.Fprintf(r.stderr, "Could not establish connection to %s. Please check login credentials.\n", postgres.RedactedURL(r.cfg.DBURL))
		return nil
	}

	runErr := fn(ctx, app.NewServices(store, r.cfg, r.logger))

	if err := store.Close(); err != nil {
		r.logger.ErrorContext(ctx, "close store failed", "error", err)
		fmt.Fprintln(r.stderr, msgCloseFailed)
		return &exitError{code: -1, err: crerr.Wrap(err, "close store")}
	}
	return runErr
}
