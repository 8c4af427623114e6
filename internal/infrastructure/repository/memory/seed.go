package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/captain"
	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/domain/league"
	"github.com/riskibarqy/jam-league/internal/domain/person"
	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/domain/team"
)

// NewSeededDatabase returns a store filled with demo data whose dates are
// relative to today. today must be a civil date.
func NewSeededDatabase(today time.Time) *Database {
	db := NewDatabase()
	Seed(db, today)
	return db
}

// Seed loads demo leagues, seasons, teams, people and games. Among them are
// a soccer season past its deadline with two teams, a team below its league
// minimum, and basketball teams whose league has no row. It panics when a
// seeded league, season or team fails validation.
func Seed(db *Database, today time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()

	year := today.Year()
	db.leagues = append(db.leagues,
		league.League{Sport: "soccer", Level: "rec", MinPlayers: 5},
		league.League{Sport: "soccer", Level: "com", MinPlayers: 7},
		league.League{Sport: "hockey", Level: "rec", MinPlayers: 6},
	)
	for _, l := range db.leagues {
		mustValidate(l)
	}

	soccerRec := season.Key{Year: year, Sport: "soccer", Level: "rec"}
	soccerCom := season.Key{Year: year, Sport: "soccer", Level: "com"}
	hockeyRec := season.Key{Year: year, Sport: "hockey", Level: "rec"}
	basketballRec := season.Key{Year: year, Sport: "basketball", Level: "rec"}
	db.seasons = append(db.seasons,
		season.Season{Key: soccerRec, RegistrationDeadline: today.AddDate(0, 0, -30)},
		season.Season{Key: soccerCom, RegistrationDeadline: today.AddDate(0, 0, 30)},
		season.Season{Key: hockeyRec, RegistrationDeadline: today.AddDate(0, 0, -30)},
		season.Season{Key: basketballRec, RegistrationDeadline: today.AddDate(0, 0, -10)},
	)
	for _, s := range db.seasons {
		mustValidate(s)
	}

	rosters := []struct {
		season season.Key
		name   string
		size   int
	}{
		{soccerRec, "Hawks", 5},
		{soccerRec, "Owls", 2},
		{soccerCom, "Strikers", 7},
		{hockeyRec, "Ice Kings", 6},
		{hockeyRec, "Blades", 3},
		{hockeyRec, "Pucks", 0},
		{hockeyRec, "Flyers", 6},
		{basketballRec, "Dunkers", 1},
		{basketballRec, "Hoopers", 1},
		{basketballRec, "Rimshots", 1},
		{basketballRec, "Swish", 1},
	}

	firstNames := []string{"Ann", "Ben", "Cara", "Dev", "Eli", "Fay", "Gus", "Hana", "Ivan", "Jo", "Kai", "Lena"}
	lastNames := []string{"Smith", "Jones", "Brown", "Lee", "Khan", "Moore", "Diaz", "Chen", "Novak", "Okafor", "Silva", "Weber"}
	for i := range firstNames {
		gender := person.GenderFemale
		if i%2 == 1 {
			gender = person.GenderMale
		}
		db.players = append(db.players, player.Player{
			ID: player.MinID + 1 + i,
			Profile: person.Profile{
				Gender:      gender,
				LastName:    lastNames[i],
				FirstName:   firstNames[i],
				Address:     fmt.Sprintf("%d Main Street", 10+i),
				Phone:       fmt.Sprintf("55501000%02d", i),
				Email:       fmt.Sprintf("%s.%s@example.com", firstNames[i], lastNames[i]),
				Birthday:    time.Date(1990+i, time.Month(1+i%12), 1+i, 0, 0, 0, 0, time.UTC),
				DateCreated: today.AddDate(0, -1, 0),
			},
		})
	}

	for _, r := range rosters {
		key := team.Key{Name: r.name, Year: r.season.Year, Sport: r.season.Sport, Level: r.season.Level}
		t := team.Team{Key: key}
		mustValidate(t)
		db.teams = append(db.teams, t)
		for i := 0; i < r.size; i++ {
			db.memberships = append(db.memberships, team.Membership{PlayerID: db.players[i].ID, Team: key})
		}
	}

	db.officials = append(db.officials,
		staff.Official{ID: staff.OfficialMinID + 1, Profile: staffProfile("m", "Ortiz", "Raul", today), HourlySalary: 25},
		staff.Official{ID: staff.OfficialMinID + 2, Profile: staffProfile("f", "Park", "Mina", today), HourlySalary: 30},
	)
	db.coordinators = append(db.coordinators,
		staff.Coordinator{ID: staff.CoordinatorMinID + 1, Profile: staffProfile("f", "Grant", "Tess", today), YearlySalary: 50000},
		staff.Coordinator{ID: staff.CoordinatorMinID + 2, Profile: staffProfile("m", "Ford", "Omar", today), YearlySalary: 62000},
	)

	db.captains = append(db.captains, captain.Captain{
		PlayerID:       player.MinID + 1,
		BillingAddress: "10 Main Street",
		CardNumber:     4111111111111111,
		CardHolder:     "Ann Smith",
		Expiry:         time.Date(year+2, time.June, 1, 0, 0, 0, 0, time.UTC),
		CardType:       "Visa",
	})

	teamKey := func(s season.Key, name string) team.Key {
		return team.Key{Name: name, Year: s.Year, Sport: s.Sport, Level: s.Level}
	}
	db.games = append(db.games,
		game.Game{Slot: game.Slot{Date: today.AddDate(0, 0, -3), Clock: "18:00"}, Sport: "soccer", Level: "rec",
			Home: teamKey(soccerRec, "Hawks"), Away: teamKey(soccerRec, "Owls")},
		game.Game{Slot: game.Slot{Date: today.AddDate(0, 0, 7), Clock: "18:00"}, Sport: "soccer", Level: "rec",
			Home: teamKey(soccerRec, "Hawks"), Away: teamKey(soccerRec, "Owls")},
		game.Game{Slot: game.Slot{Date: today.AddDate(0, 0, 7), Clock: "20:00"}, Sport: "hockey", Level: "rec",
			Home: teamKey(hockeyRec, "Ice Kings"), Away: teamKey(hockeyRec, "Blades")},
		game.Game{Slot: game.Slot{Date: today.AddDate(0, 0, 14), Clock: "10:30"}, Sport: "hockey", Level: "rec",
			Home: teamKey(hockeyRec, "Pucks"), Away: teamKey(hockeyRec, "Flyers")},
	)
}

func mustValidate(row interface{ Validate() error }) {
	if err := row.Validate(); err != nil {
		panic(fmt.Sprintf("memory seed: %v", err))
	}
}

func staffProfile(gender, last, first string, today time.Time) person.Profile {
	return person.Profile{
		Gender:      gender,
		LastName:    last,
		FirstName:   first,
		Address:     "1 League Office Way",
		Phone:       "5550200000",
		Email:       first + "@jamleague.example",
		Birthday:    time.Date(1980, time.March, 3, 0, 0, 0, 0, time.UTC),
		DateCreated: today.AddDate(-1, 0, 0),
	}
}
