package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/jam-league/internal/domain/announcement"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
	qb "github.com/riskibarqy/jam-league/internal/platform/querybuilder"
)

type AnnouncementRepository struct {
	db *sqlx.DB
}

func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a announcement.Announcement) error {
	query, args, err := qb.InsertModel("announcement", announcementFromDomain(a))
	if err != nil {
		return dberr.Classify(err, "build insert announcement query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dberr.Classify(err, "insert announcement")
	}
	return nil
}
