package memory

import (
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/announcement"
	"github.com/riskibarqy/jam-league/internal/domain/captain"
	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/domain/league"
	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/domain/team"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
)

// Database holds every table of the in-memory store behind one lock, so
// repositories built on it see each other's writes. Deletes follow the same
// cascade rules as the SQL schema.
type Database struct {
	mu sync.RWMutex

	leagues       []league.League
	seasons       []season.Season
	teams         []team.Team
	memberships   []team.Membership
	players       []player.Player
	officials     []staff.Official
	coordinators  []staff.Coordinator
	captains      []captain.Captain
	games         []game.Game
	announcements []announcement.Announcement
	routines      []pruning.Routine
}

func NewDatabase() *Database {
	return &Database{}
}

func (db *Database) AddLeague(l league.League) error {
	if err := l.Validate(); err != nil {
		return crerr.Wrap(err, "add league")
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	db.leagues = append(db.leagues, l)
	return nil
}

func (db *Database) AddSeason(s season.Season) error {
	if err := s.Validate(); err != nil {
		return crerr.Wrap(err, "add season")
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	db.seasons = append(db.seasons, s)
	return nil
}

func (db *Database) AddTeam(t team.Team) error {
	if err := t.Validate(); err != nil {
		return crerr.Wrap(err, "add team")
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	db.teams = append(db.teams, t)
	return nil
}

func (db *Database) AddMembership(m team.Membership) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.memberships = append(db.memberships, m)
}

func (db *Database) AddGame(g game.Game) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.games = append(db.games, g)
}

func (db *Database) Seasons() []season.Season {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return append([]season.Season(nil), db.seasons...)
}

func (db *Database) Teams() []team.Team {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return append([]team.Team(nil), db.teams...)
}

func (db *Database) Memberships() []team.Membership {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return append([]team.Membership(nil), db.memberships...)
}

func (db *Database) Announcements() []announcement.Announcement {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return append([]announcement.Announcement(nil), db.announcements...)
}

func (db *Database) Captains() []captain.Captain {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return append([]captain.Captain(nil), db.captains...)
}

// removeTeamsWhere drops matching teams and their memberships. Callers hold
// the write lock.
func (db *Database) removeTeamsWhere(match func(team.Key) bool) int64 {
	var removed int64
	teams := db.teams[:0]
	for _, t := range db.teams {
		if match(t.Key) {
			removed++
			continue
		}
		teams = append(teams, t)
	}
	db.teams = teams

	memberships := db.memberships[:0]
	for _, m := range db.memberships {
		if match(m.Team) {
			continue
		}
		memberships = append(memberships, m)
	}
	db.memberships = memberships

	return removed
}

func duplicateError(format string, args ...any) error {
	return crerr.Mark(crerr.Newf(format, args...), dberr.ErrDuplicate)
}
