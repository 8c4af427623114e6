package memory

import (
	"context"

	"github.com/riskibarqy/jam-league/internal/domain/announcement"
)

type AnnouncementRepository struct {
	db *Database
}

func NewAnnouncementRepository(db *Database) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(_ context.Context, a announcement.Announcement) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.announcements {
		if existing.ID == a.ID {
			return duplicateError("announcement %d already exists", a.ID)
		}
	}
	r.db.announcements = append(r.db.announcements, a)
	return nil
}
