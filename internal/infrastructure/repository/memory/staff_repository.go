package memory

import (
	"context"
	"slices"

	"github.com/riskibarqy/jam-league/internal/domain/staff"
)

type StaffRepository struct {
	db *Database
}

func NewStaffRepository(db *Database) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) ListOfficials(_ context.Context) ([]staff.Official, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := append([]staff.Official(nil), r.db.officials...)
	slices.SortFunc(out, func(a, b staff.Official) int { return a.ID - b.ID })
	return out, nil
}

func (r *StaffRepository) ListCoordinators(_ context.Context) ([]staff.Coordinator, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := append([]staff.Coordinator(nil), r.db.coordinators...)
	slices.SortFunc(out, func(a, b staff.Coordinator) int { return a.ID - b.ID })
	return out, nil
}

func (r *StaffRepository) CreateOfficial(_ context.Context, o staff.Official) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.officials {
		if existing.ID == o.ID {
			return duplicateError("official %d already exists", o.ID)
		}
	}
	r.db.officials = append(r.db.officials, o)
	return nil
}

func (r *StaffRepository) CreateCoordinator(_ context.Context, c staff.Coordinator) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.coordinators {
		if existing.ID == c.ID {
			return duplicateError("coordinator %d already exists", c.ID)
		}
	}
	r.db.coordinators = append(r.db.coordinators, c)
	return nil
}

func (r *StaffRepository) GetSalary(_ context.Context, kind staff.Kind, id int) (int, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if kind == staff.KindCoordinator {
		for _, c := range r.db.coordinators {
			if c.ID == id {
				return c.YearlySalary, true, nil
			}
		}
		return 0, false, nil
	}

	for _, o := range r.db.officials {
		if o.ID == id {
			return o.HourlySalary, true, nil
		}
	}
	return 0, false, nil
}

func (r *StaffRepository) UpdateSalary(_ context.Context, kind staff.Kind, id int, salary int) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if kind == staff.KindCoordinator {
		for i := range r.db.coordinators {
			if r.db.coordinators[i].ID == id {
				r.db.coordinators[i].YearlySalary = salary
				return true, nil
			}
		}
		return false, nil
	}

	for i := range r.db.officials {
		if r.db.officials[i].ID == id {
			r.db.officials[i].HourlySalary = salary
			return true, nil
		}
	}
	return false, nil
}
