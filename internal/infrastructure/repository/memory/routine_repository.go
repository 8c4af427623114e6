package memory

import (
	"context"

	"github.com/riskibarqy/jam-league/internal/domain/pruning"
)

type RoutineRepository struct {
	db *Database
}

func NewRoutineRepository(db *Database) *RoutineRepository {
	return &RoutineRepository{db: db}
}

func (r *RoutineRepository) Register(_ context.Context, routine pruning.Routine) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.routines {
		if existing.Name == routine.Name {
			return duplicateError("routine %s already registered", routine.Name)
		}
	}
	r.db.routines = append(r.db.routines, routine)
	return nil
}

func (r *RoutineRepository) Unregister(_ context.Context, name string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, existing := range r.db.routines {
		if existing.Name == name {
			r.db.routines = append(r.db.routines[:i], r.db.routines[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *RoutineRepository) Get(_ context.Context, name string) (pruning.Routine, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, existing := range r.db.routines {
		if existing.Name == name {
			return existing, true, nil
		}
	}
	return pruning.Routine{}, false, nil
}
