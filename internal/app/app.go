package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/jam-league/internal/config"
	"github.com/riskibarqy/jam-league/internal/domain/announcement"
	"github.com/riskibarqy/jam-league/internal/domain/captain"
	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/domain/team"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/jam-league/internal/interfaces/console"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

// Store is the set of repositories one command works against. Close
// releases the underlying connection through CloseFunc, when set.
type Store struct {
	Routines      pruning.RoutineRepository
	Seasons       season.Repository
	Teams         team.Repository
	Players       player.Repository
	Staff         staff.Repository
	Captains      captain.Repository
	Games         game.Repository
	Announcements announcement.Repository

	CloseFunc func() error
}

func (s *Store) Close() error {
	if s == nil || s.CloseFunc == nil {
		return nil
	}
	return s.CloseFunc()
}

// OpenStore connects to the configured store. The memory driver needs no
// connection and starts from demo data dated relative to today.
func OpenStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		db := memory.NewSeededDatabase(civil.Date(time.Now(), cfg.Location))
		logger.InfoContext(ctx, "using in-memory store")
		return &Store{
			Routines:      memory.NewRoutineRepository(db),
			Seasons:       memory.NewSeasonRepository(db),
			Teams:         memory.NewTeamRepository(db),
			Players:       memory.NewPlayerRepository(db),
			Staff:         memory.NewStaffRepository(db),
			Captains:      memory.NewCaptainRepository(db),
			Games:         memory.NewGameRepository(db),
			Announcements: memory.NewAnnouncementRepository(db),
		}, nil
	case config.StoreDriverPostgres:
		db, err := postgres.Open(ctx, postgres.Options{
			DSN:                   cfg.DBURL,
			ConnectTimeout:        cfg.DBConnectTimeout,
			DisablePreparedBinary: cfg.DBDisablePreparedBinary,
		})
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "connected to postgres", "db_url", postgres.RedactedURL(cfg.DBURL))
		return &Store{
			Routines:      postgres.NewRoutineRepository(db),
			Seasons:       postgres.NewSeasonRepository(db),
			Teams:         postgres.NewTeamRepository(db),
			Players:       postgres.NewPlayerRepository(db),
			Staff:         postgres.NewStaffRepository(db),
			Captains:      postgres.NewCaptainRepository(db),
			Games:         postgres.NewGameRepository(db),
			Announcements: postgres.NewAnnouncementRepository(db),
			CloseFunc:     db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// Services holds the usecases built over one store.
type Services struct {
	Prune        *usecase.PruneService
	Players      *usecase.PlayerService
	Registration *usecase.RegistrationService
	Captains     *usecase.CaptainService
	Games        *usecase.GameService
	Salaries     *usecase.SalaryService
}

func NewServices(store *Store, cfg config.Config, logger *logging.Logger) *Services {
	return &Services{
		Prune: usecase.NewPruneService(
			store.Routines,
			store.Seasons,
			store.Teams,
			usecase.PruneConfig{BatchSize: cfg.PruneBatchSize, Location: cfg.Location},
			logger,
		),
		Players:      usecase.NewPlayerService(store.Players),
		Registration: usecase.NewRegistrationService(store.Players, store.Staff, cfg.Location, logger),
		Captains:     usecase.NewCaptainService(store.Players, store.Captains, logger),
		Games:        usecase.NewGameService(store.Games, store.Announcements, cfg.Location, logger),
		Salaries:     usecase.NewSalaryService(store.Staff, logger),
	}
}

func (s *Services) RecordsConsole(prompter *console.Prompter, logger *logging.Logger) *console.Records {
	return console.NewRecords(s.Players, s.Registration, s.Captains, s.Games, s.Salaries, prompter, logger)
}

func (s *Services) CleanerConsole(prompter *console.Prompter, logger *logging.Logger) *console.Cleaner {
	return console.NewCleaner(s.Prune, prompter, logger)
}
