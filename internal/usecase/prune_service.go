package usecase

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/domain/team"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
)

const defaultPruneBatchSize = 100

type PruneConfig struct {
	BatchSize int
	Location  *time.Location
}

type PruneInput struct {
	Target pruning.Target
	DryRun bool
}

// PruneService installs, runs and removes the cleaning routine.
type PruneService struct {
	routineRepo pruning.RoutineRepository
	seasonRepo  season.Repository
	teamRepo    team.Repository
	cfg         PruneConfig
	logger      *logging.Logger
	now         func() time.Time
}

func NewPruneService(
	routineRepo pruning.RoutineRepository,
	seasonRepo season.Repository,
	teamRepo team.Repository,
	cfg PruneConfig,
	logger *logging.Logger,
) *PruneService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultPruneBatchSize
	}
	cfg.BatchSize = min(cfg.BatchSize, pruning.MaxBatchSize)
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &PruneService{
		routineRepo: routineRepo,
		seasonRepo:  seasonRepo,
		teamRepo:    teamRepo,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *PruneService) Install(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PruneService.Install")
	defer span.End()

	routine := pruning.Routine{Name: pruning.RoutineName, InstalledAt: s.now().UTC()}
	if err := s.routineRepo.Register(ctx, routine); err != nil {
		if crerr.Is(err, dberr.ErrDuplicate) {
			return fmt.Errorf("%w: routine %s is already installed", ErrAlreadyExists, pruning.RoutineName)
		}
		return storeError(err, "register routine")
	}

	s.logger.InfoContext(ctx, "routine installed", "routine", pruning.RoutineName)
	return nil
}

func (s *PruneService) Uninstall(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PruneService.Uninstall")
	defer span.End()

	removed, err := s.routineRepo.Unregister(ctx, pruning.RoutineName)
	if err != nil {
		return storeError(err, "unregister routine")
	}
	if !removed {
		return fmt.Errorf("%w: routine %s", ErrNotInstalled, pruning.RoutineName)
	}

	s.logger.InfoContext(ctx, "routine uninstalled", "routine", pruning.RoutineName)
	return nil
}

func (s *PruneService) Status(ctx context.Context) (pruning.Routine, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PruneService.Status")
	defer span.End()

	routine, ok, err := s.routineRepo.Get(ctx, pruning.RoutineName)
	if err != nil {
		return pruning.Routine{}, false, storeError(err, "get routine")
	}
	return routine, ok, nil
}

// Run evaluates one snapshot of the target rows and deletes those that
// qualify in batches. On a failed batch the report still counts the rows
// removed by earlier batches.
func (s *PruneService) Run(ctx context.Context, input PruneInput) (pruning.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PruneService.Run")
	defer span.End()

	report := pruning.Report{Target: input.Target, DryRun: input.DryRun, Pruned: []string{}, Skipped: []string{}}

	switch input.Target {
	case pruning.TargetSeason, pruning.TargetTeam:
	default:
		return report, fmt.Errorf("%w: unknown prune target %q", ErrInvalidInput, input.Target)
	}

	if _, ok, err := s.routineRepo.Get(ctx, pruning.RoutineName); err != nil {
		return report, storeError(err, "get routine")
	} else if !ok {
		return report, fmt.Errorf("%w: routine %s", ErrNotInstalled, pruning.RoutineName)
	}

	logger := s.logger.With("routine", pruning.RoutineName, "target", report.Target)

	var err error
	if input.Target == pruning.TargetSeason {
		err = s.pruneSeasons(ctx, &report)
	} else {
		err = s.pruneTeams(ctx, logger, &report)
	}
	if err != nil {
		logger.ErrorContext(ctx, "prune run failed",
			"evaluated", report.Evaluated,
			"deleted", report.Deleted,
			"error", err,
		)
		return report, err
	}

	logger.InfoContext(ctx, "prune run finished",
		"evaluated", report.Evaluated,
		"qualified", len(report.Pruned),
		"skipped", len(report.Skipped),
		"deleted", report.Deleted,
		"dry_run", report.DryRun,
	)
	return report, nil
}

func (s *PruneService) pruneSeasons(ctx context.Context, report *pruning.Report) error {
	enrollments, err := s.seasonRepo.ListEnrollments(ctx)
	if err != nil {
		return storeError(err, "list season enrollments")
	}

	today := civil.Date(s.now(), s.cfg.Location)
	report.Evaluated = len(enrollments)

	keys := make([]season.Key, 0)
	for _, e := range enrollments {
		if !pruning.ShouldPruneSeason(e, today) {
			continue
		}
		keys = append(keys, e.Season.Key)
		report.Pruned = append(report.Pruned, e.Season.Key.String())
	}
	if report.DryRun {
		return nil
	}

	deleted, err := deleteInBatches(ctx, keys, s.cfg.BatchSize, s.seasonRepo.DeleteByKeys)
	report.Deleted = deleted
	if err != nil {
		return storeError(err, "delete seasons")
	}
	return nil
}

func (s *PruneService) pruneTeams(ctx context.Context, logger *logging.Logger, report *pruning.Report) error {
	rosters, err := s.teamRepo.ListRosters(ctx)
	if err != nil {
		return storeError(err, "list team rosters")
	}

	report.Evaluated = len(rosters)

	keys := make([]team.Key, 0)
	for _, r := range rosters {
		switch pruning.EvaluateTeam(r) {
		case pruning.Prune:
			keys = append(keys, r.Team.Key)
			report.Pruned = append(report.Pruned, r.Team.Key.String())
		case pruning.Unevaluable:
			report.Skipped = append(report.Skipped, r.Team.Key.String())
			logger.WarnContext(ctx, "team has no league minimum, skipping",
				"team", r.Team.Name,
				"year", r.Team.Year,
				"sport", r.Team.Sport,
				"level", r.Team.Level,
			)
		}
	}
	if report.DryRun {
		return nil
	}

	deleted, err := deleteInBatches(ctx, keys, s.cfg.BatchSize, s.teamRepo.DeleteByKeys)
	report.Deleted = deleted
	if err != nil {
		return storeError(err, "delete teams")
	}
	return nil
}

// deleteInBatches issues one delete per batch of at most size keys and
// stops at the first failure.
func deleteInBatches[K any](ctx context.Context, keys []K, size int, del func(context.Context, []K) (int64, error)) (int64, error) {
	var total int64
	for start := 0; start < len(keys); start += size {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		end := min(start+size, len(keys))
		n, err := del(ctx, keys[start:end])
		total += n
		if err != nil {
			return total, fmt.Errorf("batch %d-%d: %w", start, end, err)
		}
	}
	return total, nil
}
