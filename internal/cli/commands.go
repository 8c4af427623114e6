package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/jam-league/internal/app"
	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/interfaces/console"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func (r *root) newRecordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Open the records console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				prompter := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				return svc.RecordsConsole(prompter, r.logger).Run(ctx)
			})
		},
	}
}

func (r *root) newCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Open the database cleaning console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				prompter := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				return svc.CleanerConsole(prompter, r.logger).Run(ctx)
			})
		},
	}
}

func (r *root) newPruneCommand() *cobra.Command {
	var (
		target string
		dryRun bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Run the cleaning routine once without the console",
		Long: `Run the installed cleaning routine on seasons or teams.

A season is removed when its registration deadline has passed and fewer
than 4 teams are registered. A team is removed when its roster is below the
minimum of its league; teams whose league has no row are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := pruning.ParseTarget(target)
			if err != nil {
				return err
			}
			if output != outputText && output != outputJSON {
				return fmt.Errorf("invalid --output %q: valid values are %s, %s", output, outputText, outputJSON)
			}

			return r.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				report, runErr := svc.Prune.Run(ctx, usecase.PruneInput{Target: t, DryRun: dryRun})
				if crerr.Is(runErr, usecase.ErrNotInstalled) || crerr.Is(runErr, usecase.ErrInvalidInput) {
					return runErr
				}

				var writeErr error
				if output == outputJSON {
					writeErr = sonic.ConfigDefault.NewEncoder(cmd.OutOrStdout()).Encode(report)
				} else {
					writeErr = console.RenderReport(cmd.OutOrStdout(), report)
				}
				if runErr != nil {
					return runErr
				}
				return writeErr
			})
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "season or team")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be removed without deleting")
	cmd.Flags().StringVar(&output, "output", outputText, "text or json")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func (r *root) newRoutineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Install, remove or inspect the cleaning routine",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "install",
			Short: "Install the cleaning routine",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return r.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
					err := svc.Prune.Install(ctx)
					if crerr.Is(err, usecase.ErrAlreadyExists) {
						fmt.Fprintf(cmd.OutOrStdout(), "routine %s is already installed\n", pruning.RoutineName)
						return nil
					}
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "routine %s installed\n", pruning.RoutineName)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "uninstall",
			Short: "Remove the cleaning routine",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return r.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
					err := svc.Prune.Uninstall(ctx)
					if crerr.Is(err, usecase.ErrNotInstalled) {
						fmt.Fprintf(cmd.OutOrStdout(), "routine %s is not installed\n", pruning.RoutineName)
						return nil
					}
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "routine %s removed\n", pruning.RoutineName)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether the cleaning routine is installed",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return r.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
					routine, ok, err := svc.Prune.Status(ctx)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintf(cmd.OutOrStdout(), "routine %s is not installed\n", pruning.RoutineName)
						return nil
					}
					fmt.Fprintf(cmd.OutOrStdout(), "routine %s installed at %s\n", routine.Name, routine.InstalledAt.Format(time.RFC3339))
					return nil
				})
			},
		},
	)
	return cmd
}
