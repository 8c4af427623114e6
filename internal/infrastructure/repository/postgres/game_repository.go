package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	qb "github.com/riskibarqy/jam-league/internal/platform/querybuilder"
)

var upcomingGameColumns = []string{
	"g.gdate", "to_char(g.gtime, 'HH24:MI') AS gclock", "g.sport", "g.llevel",
	"h.name1", "h.syear1", "h.sport1", "h.llevel1",
	"h.name2", "h.syear2", "h.sport2", "h.llevel2",
}

// gamesAfterQuery selects games strictly after day with their teams, if any.
func gamesAfterQuery(day time.Time) (string, []any, error) {
	return qb.Select(upcomingGameColumns...).
		From("game g LEFT JOIN hasteams h ON h.gdate = g.gdate AND h.gtime = g.gtime").
		Where(qb.Gt("g.gdate", civil.FormatDate(day))).
		OrderBy("g.gdate", "g.gtime").
		ToSQL()
}

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListAfter(ctx context.Context, day time.Time) ([]game.Game, error) {
	query, args, err := gamesAfterQuery(day)
	if err != nil {
		return nil, dberr.Classify(err, "build select upcoming games query")
	}

	var rows []gameRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dberr.Classify(err, "select upcoming games")
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Delete removes the game row. hasteams and officiates rows cascade.
func (r *GameRepository) Delete(ctx context.Context, slot game.Slot) (bool, error) {
	query, args, err := qb.DeleteFrom("game").
		Where(qb.Eq("gdate", civil.FormatDate(slot.Date)), qb.Eq("gtime", slot.Clock)).
		ToSQL()
	if err != nil {
		return false, dberr.Classify(err, "build delete game query")
	}

	return r.execOne(ctx, query, args, "delete game")
}

// Reschedule moves the game key in one statement. hasteams and officiates
// follow through ON UPDATE CASCADE.
func (r *GameRepository) Reschedule(ctx context.Context, from, to game.Slot) (bool, error) {
	query, args, err := qb.Update("game").
		Set("gdate", civil.FormatDate(to.Date)).
		Set("gtime", to.Clock).
		Where(qb.Eq("gdate", civil.FormatDate(from.Date)), qb.Eq("gtime", from.Clock)).
		ToSQL()
	if err != nil {
		return false, dberr.Classify(err, "build reschedule game query")
	}

	return r.execOne(ctx, query, args, "reschedule game")
}

func (r *GameRepository) execOne(ctx context.Context, query string, args []any, op string) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dberr.Classify(err, op)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return false, dberr.Classify(err, op)
	}
	return n > 0, nil
}
