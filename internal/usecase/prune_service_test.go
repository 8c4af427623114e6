package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/jam-league/internal/domain/league"
	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/domain/team"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
	pruningmock "github.com/riskibarqy/jam-league/internal/mocks/domain/pruning"
	seasonmock "github.com/riskibarqy/jam-league/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/jam-league/internal/mocks/domain/team"
)

func newMemoryPruneService(db *memory.Database, today time.Time, batchSize int) *PruneService {
	svc := NewPruneService(
		memory.NewRoutineRepository(db),
		memory.NewSeasonRepository(db),
		memory.NewTeamRepository(db),
		PruneConfig{BatchSize: batchSize, Location: time.UTC},
		logging.NewNop(),
	)
	svc.now = func() time.Time { return today.Add(15 * time.Hour) }
	return svc
}

func addSeasonWithTeams(t *testing.T, db *memory.Database, key season.Key, deadline time.Time, teams int) {
	t.Helper()
	if err := db.AddSeason(season.Season{Key: key, RegistrationDeadline: deadline}); err != nil {
		t.Fatalf("add season: %v", err)
	}
	for i := 0; i < teams; i++ {
		if err := db.AddTeam(team.Team{Key: team.Key{Name: fmt.Sprintf("Team %d", i+1), Year: key.Year, Sport: key.Sport, Level: key.Level}}); err != nil {
			t.Fatalf("add team: %v", err)
		}
	}
}

func TestPruneService_SeasonScenario(t *testing.T) {
	ctx := context.Background()
	evaluatedOn := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		teams       int
		wantDeleted int64
	}{
		{name: "two teams deleted", teams: 2, wantDeleted: 1},
		{name: "four teams retained", teams: 4, wantDeleted: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := memory.NewDatabase()
			addSeasonWithTeams(t, db, season.Key{Year: 2024, Sport: "soccer", Level: "rec"}, deadline, tc.teams)
			svc := newMemoryPruneService(db, evaluatedOn, 100)

			if err := svc.Install(ctx); err != nil {
				t.Fatalf("install: %v", err)
			}
			report, err := svc.Run(ctx, PruneInput{Target: pruning.TargetSeason})
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if report.Evaluated != 1 || report.Deleted != tc.wantDeleted {
				t.Fatalf("unexpected report: %+v", report)
			}
			if remaining := len(db.Seasons()); remaining != 1-int(tc.wantDeleted) {
				t.Fatalf("unexpected remaining seasons: %d", remaining)
			}
		})
	}
}

func TestPruneService_SeasonOnDeadlineIsKept(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	db := memory.NewDatabase()
	addSeasonWithTeams(t, db, season.Key{Year: 2024, Sport: "hockey", Level: "rec"}, today, 0)
	svc := newMemoryPruneService(db, today, 100)

	if err := svc.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	report, err := svc.Run(ctx, PruneInput{Target: pruning.TargetSeason})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Deleted != 0 || len(report.Pruned) != 0 {
		t.Fatalf("season on its deadline must be kept: %+v", report)
	}
}

func TestPruneService_TeamRun(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	db := memory.NewDatabase()
	if err := db.AddLeague(league.League{Sport: "soccer", Level: "rec", MinPlayers: 3}); err != nil {
		t.Fatalf("add league: %v", err)
	}
	addSeasonWithTeams(t, db, season.Key{Year: 2024, Sport: "soccer", Level: "rec"}, today, 2)
	addSeasonWithTeams(t, db, season.Key{Year: 2024, Sport: "curling", Level: "rec"}, today, 1)

	full := team.Key{Name: "Team 1", Year: 2024, Sport: "soccer", Level: "rec"}
	for id := 1; id <= 3; id++ {
		db.AddMembership(team.Membership{PlayerID: id, Team: full})
	}
	db.AddMembership(team.Membership{PlayerID: 1, Team: team.Key{Name: "Team 2", Year: 2024, Sport: "soccer", Level: "rec"}})

	svc := newMemoryPruneService(db, today, 100)
	if err := svc.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}

	report, err := svc.Run(ctx, PruneInput{Target: pruning.TargetTeam})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Evaluated != 3 || report.Deleted != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("curling team has no league row and should be skipped: %+v", report)
	}

	remaining := make(map[team.Key]bool)
	for _, tm := range db.Teams() {
		remaining[tm.Key] = true
	}
	if !remaining[full] {
		t.Fatalf("team at its minimum must stay")
	}
	if !remaining[team.Key{Name: "Team 1", Year: 2024, Sport: "curling", Level: "rec"}] {
		t.Fatalf("team without league must stay")
	}
}

func TestPruneService_DryRunDeletesNothing(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	db := memory.NewSeededDatabase(today)
	svc := newMemoryPruneService(db, today, 100)

	if err := svc.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	dry, err := svc.Run(ctx, PruneInput{Target: pruning.TargetTeam, DryRun: true})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if dry.Deleted != 0 || len(db.Teams()) != 11 {
		t.Fatalf("dry run changed data: %+v", dry)
	}

	applied, err := svc.Run(ctx, PruneInput{Target: pruning.TargetTeam})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(dry.Pruned) != len(applied.Pruned) || applied.Deleted != int64(len(applied.Pruned)) {
		t.Fatalf("dry run and real run disagree: dry=%+v applied=%+v", dry, applied)
	}
}

func TestPruneService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryPruneService(memory.NewDatabase(), time.Now(), 100)

	if _, err := svc.Run(ctx, PruneInput{Target: pruning.TargetSeason}); !crerr.Is(err, ErrNotInstalled) {
		t.Fatalf("expected ErrNotInstalled before install, got %v", err)
	}
	if err := svc.Uninstall(ctx); !crerr.Is(err, ErrNotInstalled) {
		t.Fatalf("expected ErrNotInstalled on uninstall, got %v", err)
	}
	if err := svc.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	if err := svc.Install(ctx); !crerr.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on second install, got %v", err)
	}
	if _, ok, err := svc.Status(ctx); err != nil || !ok {
		t.Fatalf("status after install: ok=%v err=%v", ok, err)
	}
	if err := svc.Uninstall(ctx); err != nil {
		t.Fatalf("uninstall: %v", err)
	}
	if _, err := svc.Run(ctx, PruneInput{Target: pruning.TargetTeam}); !crerr.Is(err, ErrNotInstalled) {
		t.Fatalf("expected ErrNotInstalled after uninstall, got %v", err)
	}
}

func TestPruneService_RunRejectsUnknownTarget(t *testing.T) {
	svc := newMemoryPruneService(memory.NewDatabase(), time.Now(), 100)
	if _, err := svc.Run(context.Background(), PruneInput{Target: "league"}); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNewPruneService_ClampsBatchSize(t *testing.T) {
	cases := map[int]int{0: 100, -3: 100, 50: 50, pruning.MaxBatchSize + 1: pruning.MaxBatchSize, 1 << 20: pruning.MaxBatchSize}
	for in, want := range cases {
		svc := NewPruneService(nil, nil, nil, PruneConfig{BatchSize: in}, logging.NewNop())
		if svc.cfg.BatchSize != want {
			t.Fatalf("batch size %d: got=%d want=%d", in, svc.cfg.BatchSize, want)
		}
	}
}

func TestPruneService_BatchesDeletesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	routineRepo := pruningmock.NewRoutineRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	enrollments := make([]season.Enrollment, 0, 5)
	for i := 0; i < 5; i++ {
		enrollments = append(enrollments, season.Enrollment{
			Season: season.Season{
				Key:                  season.Key{Year: 2020 + i, Sport: "soccer", Level: "rec"},
				RegistrationDeadline: today.AddDate(0, -1, 0),
			},
			TeamCount: 1,
		})
	}

	routineRepo.On("Get", mock.Anything, pruning.RoutineName).Return(pruning.Routine{Name: pruning.RoutineName}, true, nil).Once()
	seasonRepo.On("ListEnrollments", mock.Anything).Return(enrollments, nil).Once()
	seasonRepo.On("DeleteByKeys", mock.Anything, mock.MatchedBy(func(keys []season.Key) bool { return len(keys) == 2 })).Return(int64(2), nil).Twice()
	seasonRepo.On("DeleteByKeys", mock.Anything, mock.MatchedBy(func(keys []season.Key) bool { return len(keys) == 1 })).Return(int64(1), nil).Once()

	svc := NewPruneService(routineRepo, seasonRepo, teamRepo, PruneConfig{BatchSize: 2, Location: time.UTC}, logging.NewNop())
	svc.now = func() time.Time { return today }

	report, err := svc.Run(ctx, PruneInput{Target: pruning.TargetSeason})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Deleted != 5 || len(report.Pruned) != 5 {
		t.Fatalf("unexpected report: %+v", report)
	}
	seasonRepo.AssertNumberOfCalls(t, "DeleteByKeys", 3)
}

func TestPruneService_PartialFailureKeepsEarlierBatchesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	routineRepo := pruningmock.NewRoutineRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	rosters := make([]team.Roster, 0, 3)
	for i := 0; i < 3; i++ {
		rosters = append(rosters, team.Roster{
			Team:       team.Team{Key: team.Key{Name: fmt.Sprintf("T%d", i), Year: 2024, Sport: "soccer", Level: "rec"}},
			Size:       1,
			MinPlayers: 5,
			HasMinimum: true,
		})
	}
	dbFailure := crerr.Mark(errors.New("connection reset"), dberr.ErrConnection)

	routineRepo.On("Get", mock.Anything, pruning.RoutineName).Return(pruning.Routine{Name: pruning.RoutineName}, true, nil).Once()
	teamRepo.On("ListRosters", mock.Anything).Return(rosters, nil).Once()
	teamRepo.On("DeleteByKeys", mock.Anything, []team.Key{rosters[0].Team.Key, rosters[1].Team.Key}).Return(int64(2), nil).Once()
	teamRepo.On("DeleteByKeys", mock.Anything, []team.Key{rosters[2].Team.Key}).Return(int64(0), dbFailure).Once()

	svc := NewPruneService(routineRepo, seasonRepo, teamRepo, PruneConfig{BatchSize: 2}, logging.NewNop())

	report, err := svc.Run(ctx, PruneInput{Target: pruning.TargetTeam})
	if !crerr.Is(err, ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
	if report.Deleted != 2 {
		t.Fatalf("earlier batch should be reported, got %+v", report)
	}
}
