package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	qb "github.com/riskibarqy/jam-league/internal/platform/querybuilder"
)

type StaffRepository struct {
	db *sqlx.DB
}

func NewStaffRepository(db *sqlx.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) ListOfficials(ctx context.Context) ([]staff.Official, error) {
	query, args, err := qb.Select(qb.Columns(officialTableModel{})...).From("official").OrderBy("oid").ToSQL()
	if err != nil {
		return nil, dberr.Classify(err, "build select officials query")
	}

	var rows []officialTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dberr.Classify(err, "select officials")
	}

	out := make([]staff.Official, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StaffRepository) ListCoordinators(ctx context.Context) ([]staff.Coordinator, error) {
	query, args, err := qb.Select(qb.Columns(coordinatorTableModel{})...).From("coordinator").OrderBy("cid").ToSQL()
	if err != nil {
		return nil, dberr.Classify(err, "build select coordinators query")
	}

	var rows []coordinatorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dberr.Classify(err, "select coordinators")
	}

	out := make([]staff.Coordinator, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StaffRepository) CreateOfficial(ctx context.Context, o staff.Official) error {
	return r.insert(ctx, "official", officialTableModel{
		ID:             o.ID,
		profileColumns: profileFromDomain(o.Profile),
		HourlySalary:   o.HourlySalary,
	})
}

func (r *StaffRepository) CreateCoordinator(ctx context.Context, c staff.Coordinator) error {
	return r.insert(ctx, "coordinator", coordinatorTableModel{
		ID:             c.ID,
		profileColumns: profileFromDomain(c.Profile),
		YearlySalary:   c.YearlySalary,
	})
}

func (r *StaffRepository) insert(ctx context.Context, table string, model any) error {
	query, args, err := qb.InsertModel(table, model)
	if err != nil {
		return dberr.Classify(err, "build insert "+table+" query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dberr.Classify(err, "insert "+table)
	}
	return nil
}

func (r *StaffRepository) GetSalary(ctx context.Context, kind staff.Kind, id int) (int, bool, error) {
	table, idColumn, salaryColumn := salaryTable(kind)
	query, args, err := qb.Select(salaryColumn).From(table).Where(qb.Eq(idColumn, id)).ToSQL()
	if err != nil {
		return 0, false, dberr.Classify(err, "build get salary query")
	}

	var salary int
	if err := r.db.GetContext(ctx, &salary, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, dberr.Classify(err, "get "+table+" salary")
	}
	return salary, true, nil
}

func (r *StaffRepository) UpdateSalary(ctx context.Context, kind staff.Kind, id int, salary int) (bool, error) {
	table, idColumn, salaryColumn := salaryTable(kind)
	query, args, err := qb.Update(table).Set(salaryColumn, salary).Where(qb.Eq(idColumn, id)).ToSQL()
	if err != nil {
		return false, dberr.Classify(err, "build update salary query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dberr.Classify(err, "update "+table+" salary")
	}
	n, err := rowsAffected(res)
	if err != nil {
		return false, dberr.Classify(err, "count updated salaries")
	}
	return n > 0, nil
}
