package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/riskibarqy/jam-league/internal/config"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type migrator struct {
	dbURL  string
	dir    string
	logger *logging.Logger
}

func newRootCommand() *cobra.Command {
	m := &migrator{}

	root := &cobra.Command{
		Use:           "migration",
		Short:         "Apply the jam-league schema migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if m.dbURL == "" {
				m.dbURL = cfg.DBURL
			}
			m.dbURL = postgres.NormalizeDBURL(strings.TrimSpace(m.dbURL), cfg.DBDisablePreparedBinary)
			if m.dbURL == "" {
				return errors.New("DB_URL is required")
			}
			m.logger = logging.NewJSON(cfg.LogLevel, os.Stderr)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&m.dbURL, "db-url", "", "database URL (default from DB_URL)")
	root.PersistentFlags().StringVar(&m.dir, "dir", "", "migrations directory (default from MIGRATIONS_DIR or ./db/migrations)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return m.run(func(mg *migrate.Migrate) error {
					if err := ignoreNoChange(mg.Up()); err != nil {
						return err
					}
					m.logger.Info("migrations applied")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (default 1 step)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				return m.run(func(mg *migrate.Migrate) error {
					if err := ignoreNoChange(mg.Steps(-steps)); err != nil {
						return err
					}
					m.logger.Info("migrations rolled back", "steps", steps)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return m.run(func(mg *migrate.Migrate) error {
					version, dirty, err := mg.Version()
					if errors.Is(err, migrate.ErrNilVersion) {
						fmt.Fprintln(cmd.OutOrStdout(), "version: none")
						fmt.Fprintln(cmd.OutOrStdout(), "dirty: false")
						return nil
					}
					if err != nil {
						return errors.Wrap(err, "read version")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", version)
					fmt.Fprintf(cmd.OutOrStdout(), "dirty: %t\n", dirty)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				version, err := parseVersion(args[0])
				if err != nil {
					return err
				}
				return m.run(func(mg *migrate.Migrate) error {
					if err := mg.Force(version); err != nil {
						return errors.Wrapf(err, "force version %d", version)
					}
					m.logger.Info("schema version forced", "version", version)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:     "goto <version>",
			Aliases: []string{"migrate"},
			Short:   "Migrate up or down to a specific version",
			Args:    cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				target, err := parseTarget(args[0])
				if err != nil {
					return err
				}
				return m.run(func(mg *migrate.Migrate) error {
					if err := ignoreNoChange(mg.Migrate(target)); err != nil {
						return err
					}
					m.logger.Info("migrated", "version", target)
					return nil
				})
			},
		},
	)

	return root
}

func (m *migrator) run(fn func(*migrate.Migrate) error) error {
	dir, err := resolveMigrationsDir(m.dir)
	if err != nil {
		return err
	}

	sourceURL := "file://" + filepath.ToSlash(dir)
	mg, err := migrate.New(sourceURL, m.dbURL)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if srcErr != nil {
			m.logger.Warn("close migration source failed", "error", srcErr)
		}
		if dbErr != nil {
			m.logger.Warn("close migration db failed", "error", dbErr)
		}
	}()

	mg.Log = newMigrateLogger(m.logger)

	m.logger.Debug("migration source resolved", "source", sourceURL)
	return fn(mg)
}

// migrateLogger adapts the zap logger to migrate.Logger.
type migrateLogger struct {
	sugar   *zap.SugaredLogger
	verbose bool
}

func newMigrateLogger(logger *logging.Logger) migrateLogger {
	z := logger.Zap()
	return migrateLogger{sugar: z.Sugar(), verbose: z.Core().Enabled(zapcore.DebugLevel)}
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.sugar.Infof(strings.TrimRight(format, "\n"), v...)
}

func (l migrateLogger) Verbose() bool {
	return l.verbose
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid down steps %q", args[0])
	}
	if steps <= 0 {
		return 0, errors.New("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid version %q", raw)
	}
	if value < 0 {
		return 0, errors.New("version must be >= 0")
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid target version %q", raw)
	}
	return uint(value), nil
}

func resolveMigrationsDir(flagValue string) (string, error) {
	candidates := []string{
		strings.TrimSpace(flagValue),
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", errors.New("migration directory not found (checked --dir, MIGRATIONS_DIR, ./db/migrations)")
}
