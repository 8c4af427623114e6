package console

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

const CleanerExitKey = 5

// Cleaner is the database cleaning console.
type Cleaner struct {
	prune    *usecase.PruneService
	prompter *Prompter
	logger   *logging.Logger
}

func NewCleaner(prune *usecase.PruneService, prompter *Prompter, logger *logging.Logger) *Cleaner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Cleaner{prune: prune, prompter: prompter, logger: logger}
}

func (c *Cleaner) Menu() Menu {
	return Menu{
		Name:   "Cleaner",
		Banner: []string{"Welcome to JAM Sports and Rec.", "Database cleaning system"},
		Items: []Item{
			{Key: 1, Name: "Install", Label: "Install cleaning routine", Run: c.install},
			{
				Key: 2, Name: "RunTeam", Label: "Run cleaning routine on TEAM",
				Help: []string{
					"All teams with fewer players than their league minimum are deleted.",
					"To be run after the deadline.",
				},
				Run: func(ctx context.Context) error { return c.run(ctx, pruning.TargetTeam) },
			},
			{
				Key: 3, Name: "RunSeason", Label: "Run cleaning routine on SEASON",
				Help: []string{
					"Cleans all seasons where the registration deadline",
					"has passed but there are still less than 4 teams registered.",
				},
				Run: func(ctx context.Context) error { return c.run(ctx, pruning.TargetSeason) },
			},
			{Key: 4, Name: "Uninstall", Label: "Uninstall cleaning routine", Run: c.uninstall},
		},
		ExitKey:  CleanerExitKey,
		ExitText: "Exit Application",
		Farewell: "Exiting Now. Thank you for using JAM cleaner.",
	}
}

func (c *Cleaner) Run(ctx context.Context) error {
	return c.Menu().Run(ctx, c.prompter, c.logger)
}

func (c *Cleaner) install(ctx context.Context) error {
	err := c.prune.Install(ctx)
	switch {
	case err == nil:
		c.prompter.Println("Cleaning routine installed successfully.")
	case crerr.Is(err, usecase.ErrAlreadyExists):
		c.prompter.Println("The routine is already installed. You can run the commands.")
	default:
		return err
	}
	return nil
}

func (c *Cleaner) uninstall(ctx context.Context) error {
	err := c.prune.Uninstall(ctx)
	switch {
	case err == nil:
		c.prompter.Println("Cleaning routine was removed.")
	case crerr.Is(err, usecase.ErrNotInstalled):
		c.prompter.Println("The routine was not installed. Nothing to remove.")
	default:
		return err
	}
	return nil
}

func (c *Cleaner) run(ctx context.Context, target pruning.Target) error {
	report, err := c.prune.Run(ctx, usecase.PruneInput{Target: target})
	if crerr.Is(err, usecase.ErrNotInstalled) {
		c.prompter.Println("You need to install the routine before running it.")
		return nil
	}
	if err != nil {
		if report.Deleted > 0 {
			c.prompter.Printf("The run stopped after removing %d row(s).\n", report.Deleted)
		}
		return err
	}

	return RenderReport(c.prompter.Writer(), report)
}
