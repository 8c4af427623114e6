package memory

import (
	"context"
	"slices"

	"github.com/riskibarqy/jam-league/internal/domain/player"
)

type PlayerRepository struct {
	db *Database
}

func NewPlayerRepository(db *Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Search(_ context.Context, criteria []player.Criterion) ([]player.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.db.players {
		if matchesAll(p, criteria) {
			out = append(out, p)
		}
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.players {
		if existing.ID == p.ID {
			return duplicateError("player %d already exists", p.ID)
		}
	}
	r.db.players = append(r.db.players, p)
	return nil
}

func (r *PlayerRepository) ListNonCaptains(_ context.Context) ([]player.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	captains := make(map[int]struct{}, len(r.db.captains))
	for _, c := range r.db.captains {
		captains[c.PlayerID] = struct{}{}
	}

	out := make([]player.Player, 0, len(r.db.players))
	for _, p := range r.db.players {
		if _, ok := captains[p.ID]; !ok {
			out = append(out, p)
		}
	}
	sortPlayers(out)

	return out, nil
}

func matchesAll(p player.Player, criteria []player.Criterion) bool {
	for _, c := range criteria {
		if !c.Matches(p) {
			return false
		}
	}
	return true
}

func sortPlayers(players []player.Player) {
	slices.SortFunc(players, func(a, b player.Player) int { return a.ID - b.ID })
}
