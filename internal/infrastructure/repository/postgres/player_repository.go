package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	qb "github.com/riskibarqy/jam-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Search(ctx context.Context, criteria []player.Criterion) ([]player.Player, error) {
	conds := make([]qb.Condition, 0, len(criteria))
	for _, c := range criteria {
		col := c.Field.Column()
		if col == "" {
			return nil, dberr.Classify(fmt.Errorf("unknown player field %d", c.Field), "build search players query")
		}
		conds = append(conds, qb.Eq(col, c.Value))
	}

	query, args, err := qb.Select(qb.Columns(playerTableModel{})...).
		From("player").
		Where(conds...).
		OrderBy("pid").
		ToSQL()
	if err != nil {
		return nil, dberr.Classify(err, "build search players query")
	}

	return r.selectPlayers(ctx, query, args, "search players")
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertModel("player", playerTableModel{
		ID:             p.ID,
		profileColumns: profileFromDomain(p.Profile),
	})
	if err != nil {
		return dberr.Classify(err, "build insert player query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dberr.Classify(err, "insert player")
	}
	return nil
}

func (r *PlayerRepository) ListNonCaptains(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(qb.Columns(playerTableModel{})...).
		From("player").
		Where(qb.Expr("pid NOT IN (SELECT cptnid FROM captain)")).
		OrderBy("pid").
		ToSQL()
	if err != nil {
		return nil, dberr.Classify(err, "build select non-captains query")
	}

	return r.selectPlayers(ctx, query, args, "select non-captains")
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args []any, op string) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dberr.Classify(err, op)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
