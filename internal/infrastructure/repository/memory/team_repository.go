package memory

import (
	"context"

	"github.com/riskibarqy/jam-league/internal/domain/team"
)

type TeamRepository struct {
	db *Database
}

func NewTeamRepository(db *Database) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListRosters(_ context.Context) ([]team.Roster, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	players := make(map[team.Key]map[int]struct{}, len(r.db.teams))
	for _, m := range r.db.memberships {
		if players[m.Team] == nil {
			players[m.Team] = make(map[int]struct{})
		}
		players[m.Team][m.PlayerID] = struct{}{}
	}

	out := make([]team.Roster, 0, len(r.db.teams))
	for _, t := range r.db.teams {
		roster := team.Roster{Team: t, Size: len(players[t.Key])}
		for _, l := range r.db.leagues {
			if l.Sport != t.Sport || l.Level != t.Level {
				continue
			}
			if !roster.HasMinimum || l.MinPlayers < roster.MinPlayers {
				roster.MinPlayers = l.MinPlayers
			}
			roster.HasMinimum = true
		}
		out = append(out, roster)
	}

	return out, nil
}

func (r *TeamRepository) DeleteByKeys(_ context.Context, keys []team.Key) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	wanted := make(map[team.Key]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	removed := r.db.removeTeamsWhere(func(k team.Key) bool {
		_, ok := wanted[k]
		return ok
	})
	return removed, nil
}
