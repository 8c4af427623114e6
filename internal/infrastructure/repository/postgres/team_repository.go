package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/jam-league/internal/domain/team"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	qb "github.com/riskibarqy/jam-league/internal/platform/querybuilder"
)

// min_players is NULL when no league row exists for the team's sport and level.
const selectTeamRostersSQL = `
SELECT t.name, t.syear, t.sport, t.llevel,
	(SELECT COUNT(DISTINCT p.pid)
		FROM playsfor p
		WHERE p.name = t.name AND p.syear = t.syear AND p.sport = t.sport AND p.llevel = t.llevel) AS roster_size,
	(SELECT MIN(l.minplayers)
		FROM league l
		WHERE l.sport = t.sport AND l.llevel = t.llevel) AS min_players
FROM team t
ORDER BY t.syear, t.sport, t.llevel, t.name`

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListRosters(ctx context.Context) ([]team.Roster, error) {
	var rows []teamRosterModel
	if err := r.db.SelectContext(ctx, &rows, selectTeamRostersSQL); err != nil {
		return nil, dberr.Classify(err, "select team rosters")
	}

	out := make([]team.Roster, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) DeleteByKeys(ctx context.Context, keys []team.Key) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	tuples := make([][]any, 0, len(keys))
	for _, k := range keys {
		tuples = append(tuples, []any{k.Name, k.Year, k.Sport, k.Level})
	}
	query, args, err := qb.DeleteFrom("team").
		Where(qb.TupleIn([]string{"name", "syear", "sport", "llevel"}, tuples)).
		ToSQL()
	if err != nil {
		return 0, dberr.Classify(err, "build delete teams query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dberr.Classify(err, "delete teams")
	}
	n, err := rowsAffected(res)
	if err != nil {
		return 0, dberr.Classify(err, "count deleted teams")
	}
	return n, nil
}
