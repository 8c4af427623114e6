package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	qb "github.com/riskibarqy/jam-league/internal/platform/querybuilder"
)

const routineTable = "maintenance_routine"

type RoutineRepository struct {
	db *sqlx.DB
}

func NewRoutineRepository(db *sqlx.DB) *RoutineRepository {
	return &RoutineRepository{db: db}
}

func (r *RoutineRepository) Register(ctx context.Context, routine pruning.Routine) error {
	query, args, err := qb.InsertModel(routineTable, routineTableModel{
		Name:        routine.Name,
		InstalledAt: routine.InstalledAt,
	})
	if err != nil {
		return dberr.Classify(err, "build insert routine query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dberr.Classify(err, "insert routine")
	}
	return nil
}

func (r *RoutineRepository) Unregister(ctx context.Context, name string) (bool, error) {
	query, args, err := qb.DeleteFrom(routineTable).Where(qb.Eq("name", name)).ToSQL()
	if err != nil {
		return false, dberr.Classify(err, "build delete routine query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dberr.Classify(err, "delete routine")
	}
	n, err := rowsAffected(res)
	if err != nil {
		return false, dberr.Classify(err, "count deleted routines")
	}
	return n > 0, nil
}

func (r *RoutineRepository) Get(ctx context.Context, name string) (pruning.Routine, bool, error) {
	query, args, err := qb.Select(qb.Columns(routineTableModel{})...).
		From(routineTable).
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return pruning.Routine{}, false, dberr.Classify(err, "build get routine query")
	}

	var row routineTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pruning.Routine{}, false, nil
		}
		return pruning.Routine{}, false, dberr.Classify(err, "get routine")
	}

	return pruning.Routine{Name: row.Name, InstalledAt: row.InstalledAt}, true, nil
}
