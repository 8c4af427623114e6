package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/jam-league/internal/domain/captain"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	qb "github.com/riskibarqy/jam-league/internal/platform/querybuilder"
)

type CaptainRepository struct {
	db *sqlx.DB
}

func NewCaptainRepository(db *sqlx.DB) *CaptainRepository {
	return &CaptainRepository{db: db}
}

func (r *CaptainRepository) Create(ctx context.Context, c captain.Captain) error {
	query, args, err := qb.InsertModel("captain", captainFromDomain(c))
	if err != nil {
		return dberr.Classify(err, "build insert captain query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dberr.Classify(err, "insert captain")
	}
	return nil
}
