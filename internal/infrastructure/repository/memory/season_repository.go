package memory

import (
	"context"

	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/domain/team"
)

type SeasonRepository struct {
	db *Database
}

func NewSeasonRepository(db *Database) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) ListEnrollments(_ context.Context) ([]season.Enrollment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[season.Key]map[string]struct{}, len(r.db.seasons))
	for _, t := range r.db.teams {
		key := t.Key.Season()
		if counts[key] == nil {
			counts[key] = make(map[string]struct{})
		}
		counts[key][t.Name] = struct{}{}
	}

	out := make([]season.Enrollment, 0, len(r.db.seasons))
	for _, s := range r.db.seasons {
		out = append(out, season.Enrollment{Season: s, TeamCount: len(counts[s.Key])})
	}

	return out, nil
}

// DeleteByKeys removes the seasons and, like the season foreign key, the
// teams registered under them.
func (r *SeasonRepository) DeleteByKeys(_ context.Context, keys []season.Key) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	wanted := make(map[season.Key]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	var removed int64
	seasons := r.db.seasons[:0]
	for _, s := range r.db.seasons {
		if _, ok := wanted[s.Key]; ok {
			removed++
			continue
		}
		seasons = append(seasons, s)
	}
	r.db.seasons = seasons

	r.db.removeTeamsWhere(func(k team.Key) bool {
		_, ok := wanted[k.Season()]
		return ok
	})

	return removed, nil
}
