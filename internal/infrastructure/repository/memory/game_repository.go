package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
)

type GameRepository struct {
	db *Database
}

func NewGameRepository(db *Database) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListAfter(_ context.Context, day time.Time) ([]game.Game, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]game.Game, 0, len(r.db.games))
	for _, g := range r.db.games {
		if civil.Before(day, g.Date) {
			out = append(out, g)
		}
	}
	slices.SortFunc(out, compareSlots)

	return out, nil
}

func (r *GameRepository) Delete(_ context.Context, slot game.Slot) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, g := range r.db.games {
		if sameSlot(g.Slot, slot) {
			r.db.games = append(r.db.games[:i], r.db.games[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *GameRepository) Reschedule(_ context.Context, from, to game.Slot) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := -1
	for i, g := range r.db.games {
		if sameSlot(g.Slot, to) && !sameSlot(g.Slot, from) {
			return false, duplicateError("a game is already scheduled at %s", to)
		}
		if sameSlot(g.Slot, from) {
			idx = i
		}
	}
	if idx < 0 {
		return false, nil
	}
	r.db.games[idx].Slot = to
	return true, nil
}

func sameSlot(a, b game.Slot) bool {
	return civil.FormatDate(a.Date) == civil.FormatDate(b.Date) && a.Clock == b.Clock
}

func compareSlots(a, b game.Game) int {
	if c := strings.Compare(civil.FormatDate(a.Date), civil.FormatDate(b.Date)); c != 0 {
		return c
	}
	return strings.Compare(a.Clock, b.Clock)
}
