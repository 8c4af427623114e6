package memory

import (
	"context"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/domain/league"
	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/domain/team"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
)

var seedToday = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestSeasonRepository_ListEnrollmentsCountsDistinctTeams(t *testing.T) {
	ctx := context.Background()
	db := NewSeededDatabase(seedToday)

	enrollments, err := NewSeasonRepository(db).ListEnrollments(ctx)
	if err != nil {
		t.Fatalf("list enrollments: %v", err)
	}
	if len(enrollments) != 4 {
		t.Fatalf("unexpected season count: %d", len(enrollments))
	}

	got := make(map[string]int, len(enrollments))
	for _, e := range enrollments {
		got[e.Season.Sport+"/"+e.Season.Level] = e.TeamCount
	}
	want := map[string]int{"soccer/rec": 2, "soccer/com": 1, "hockey/rec": 4, "basketball/rec": 4}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("team count for %s: got=%d want=%d", k, got[k], v)
		}
	}
}

func TestSeasonRepository_DeleteCascadesToTeams(t *testing.T) {
	ctx := context.Background()
	db := NewSeededDatabase(seedToday)
	key := season.Key{Year: 2025, Sport: "soccer", Level: "rec"}

	n, err := NewSeasonRepository(db).DeleteByKeys(ctx, []season.Key{key})
	if err != nil {
		t.Fatalf("delete seasons: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 season deleted, got %d", n)
	}
	for _, tm := range db.Teams() {
		if tm.Key.Season() == key {
			t.Fatalf("team %s should have been removed with its season", tm.Key)
		}
	}
	for _, m := range db.Memberships() {
		if m.Team.Season() == key {
			t.Fatalf("membership of %s should have been removed", m.Team)
		}
	}
}

func TestTeamRepository_ListRostersReportsMissingLeague(t *testing.T) {
	ctx := context.Background()
	db := NewSeededDatabase(seedToday)

	rosters, err := NewTeamRepository(db).ListRosters(ctx)
	if err != nil {
		t.Fatalf("list rosters: %v", err)
	}

	byName := make(map[string]team.Roster, len(rosters))
	for _, r := range rosters {
		byName[r.Team.Name] = r
	}
	if r := byName["Owls"]; !r.HasMinimum || r.Size != 2 || r.MinPlayers != 5 {
		t.Fatalf("unexpected Owls roster: %+v", r)
	}
	if r := byName["Dunkers"]; r.HasMinimum {
		t.Fatalf("basketball has no league row, got %+v", r)
	}
}

func TestTeamRepository_DeleteByKeys(t *testing.T) {
	ctx := context.Background()
	db := NewSeededDatabase(seedToday)
	owls := team.Key{Name: "Owls", Year: 2025, Sport: "soccer", Level: "rec"}

	n, err := NewTeamRepository(db).DeleteByKeys(ctx, []team.Key{owls, {Name: "Ghosts", Year: 2025, Sport: "soccer", Level: "rec"}})
	if err != nil {
		t.Fatalf("delete teams: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected only the existing team to count, got %d", n)
	}
	for _, m := range db.Memberships() {
		if m.Team == owls {
			t.Fatalf("Owls memberships should be gone")
		}
	}
}

func TestRoutineRepository_DuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	repo := NewRoutineRepository(NewDatabase())
	routine := pruning.Routine{Name: pruning.RoutineName, InstalledAt: seedToday}

	if err := repo.Register(ctx, routine); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := repo.Register(ctx, routine); !crerr.Is(err, dberr.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	removed, err := repo.Unregister(ctx, pruning.RoutineName)
	if err != nil || !removed {
		t.Fatalf("unregister: removed=%v err=%v", removed, err)
	}
	if _, ok, _ := repo.Get(ctx, pruning.RoutineName); ok {
		t.Fatalf("routine should be gone")
	}
}

func TestPlayerRepository_SearchAndNonCaptains(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(NewSeededDatabase(seedToday))

	found, err := repo.Search(ctx, []player.Criterion{
		{Field: player.FieldLastName, Value: "Smith"},
		{Field: player.FieldFirstName, Value: "Ann"},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].ID != player.MinID+1 {
		t.Fatalf("unexpected search result: %+v", found)
	}

	eligible, err := repo.ListNonCaptains(ctx)
	if err != nil {
		t.Fatalf("list non-captains: %v", err)
	}
	for _, p := range eligible {
		if p.ID == player.MinID+1 {
			t.Fatalf("seeded captain listed as eligible")
		}
	}

	if err := repo.Create(ctx, found[0]); !crerr.Is(err, dberr.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestStaffRepository_UpdateSalary(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepository(NewSeededDatabase(seedToday))
	id := staff.CoordinatorMinID + 1

	ok, err := repo.UpdateSalary(ctx, staff.KindCoordinator, id, 51000)
	if err != nil || !ok {
		t.Fatalf("update salary: ok=%v err=%v", ok, err)
	}
	salary, ok, err := repo.GetSalary(ctx, staff.KindCoordinator, id)
	if err != nil || !ok || salary != 51000 {
		t.Fatalf("unexpected salary: %d ok=%v err=%v", salary, ok, err)
	}
	if _, ok, _ := repo.GetSalary(ctx, staff.KindOfficial, id); ok {
		t.Fatalf("coordinator id must not resolve as an official")
	}
}

func TestGameRepository_ListAfterAndReschedule(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(NewSeededDatabase(seedToday))

	games, err := repo.ListAfter(ctx, seedToday)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 upcoming games, got %d", len(games))
	}

	taken := games[1].Slot
	if _, err := repo.Reschedule(ctx, games[0].Slot, taken); !crerr.Is(err, dberr.ErrDuplicate) {
		t.Fatalf("expected slot conflict, got %v", err)
	}

	to := game.Slot{Date: seedToday.AddDate(0, 0, 21), Clock: "09:00"}
	ok, err := repo.Reschedule(ctx, games[0].Slot, to)
	if err != nil || !ok {
		t.Fatalf("reschedule: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, to)
	if err != nil || !ok {
		t.Fatalf("delete moved game: ok=%v err=%v", ok, err)
	}
	ok, _ = repo.Delete(ctx, to)
	if ok {
		t.Fatalf("second delete should find nothing")
	}
}

func TestDatabase_AddRejectsInvalidRows(t *testing.T) {
	db := NewDatabase()

	if err := db.AddLeague(league.League{Sport: "soccer", Level: "rec", MinPlayers: -1}); err == nil {
		t.Fatalf("expected negative league minimum to be rejected")
	}
	if err := db.AddSeason(season.Season{Key: season.Key{Year: 2025, Sport: "soccer", Level: "rec"}}); err == nil {
		t.Fatalf("expected season without deadline to be rejected")
	}
	if err := db.AddTeam(team.Team{Key: team.Key{Year: 2025, Sport: "soccer", Level: "rec"}}); err == nil {
		t.Fatalf("expected team without name to be rejected")
	}
	if len(db.Seasons()) != 0 || len(db.Teams()) != 0 {
		t.Fatalf("rejected rows were stored: seasons=%d teams=%d", len(db.Seasons()), len(db.Teams()))
	}

	if err := db.AddSeason(season.Season{Key: season.Key{Year: 2025, Sport: "soccer", Level: "rec"}, RegistrationDeadline: seedToday}); err != nil {
		t.Fatalf("add season: %v", err)
	}
	if err := db.AddTeam(team.Team{Key: team.Key{Name: "Hawks", Year: 2025, Sport: "soccer", Level: "rec"}}); err != nil {
		t.Fatalf("add team: %v", err)
	}
}
