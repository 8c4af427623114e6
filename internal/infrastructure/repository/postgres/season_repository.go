package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	qb "github.com/riskibarqy/jam-league/internal/platform/querybuilder"
)

// seasonEnrollmentsQuery counts the distinct teams registered under each
// season key. Seasons without teams count zero.
func seasonEnrollmentsQuery() (string, []any, error) {
	return qb.Select("s.syear", "s.sport", "s.llevel", "s.regdeadline", "COUNT(DISTINCT t.name) AS team_count").
		From("season s LEFT JOIN team t ON t.syear = s.syear AND t.sport = s.sport AND t.llevel = s.llevel").
		GroupBy("s.syear", "s.sport", "s.llevel", "s.regdeadline").
		OrderBy("s.syear", "s.sport", "s.llevel").
		ToSQL()
}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// ListEnrollments reads every season with its distinct team count in one
// statement, which is the snapshot the pruning run iterates.
func (r *SeasonRepository) ListEnrollments(ctx context.Context) ([]season.Enrollment, error) {
	query, args, err := seasonEnrollmentsQuery()
	if err != nil {
		return nil, dberr.Classify(err, "build select season enrollments query")
	}

	var rows []seasonEnrollmentModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dberr.Classify(err, "select season enrollments")
	}

	out := make([]season.Enrollment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *SeasonRepository) DeleteByKeys(ctx context.Context, keys []season.Key) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	tuples := make([][]any, 0, len(keys))
	for _, k := range keys {
		tuples = append(tuples, []any{k.Year, k.Sport, k.Level})
	}
	query, args, err := qb.DeleteFrom("season").
		Where(qb.TupleIn([]string{"syear", "sport", "llevel"}, tuples)).
		ToSQL()
	if err != nil {
		return 0, dberr.Classify(err, "build delete seasons query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dberr.Classify(err, "delete seasons")
	}
	n, err := rowsAffected(res)
	if err != nil {
		return 0, dberr.Classify(err, "count deleted seasons")
	}
	return n, nil
}
