package memory

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/captain"
	"github.com/riskibarqy/jam-league/internal/platform/dberr"
)

type CaptainRepository struct {
	db *Database
}

func NewCaptainRepository(db *Database) *CaptainRepository {
	return &CaptainRepository{db: db}
}

func (r *CaptainRepository) Create(_ context.Context, c captain.Captain) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	known := false
	for _, p := range r.db.players {
		if p.ID == c.PlayerID {
			known = true
			break
		}
	}
	if !known {
		return crerr.Mark(crerr.Newf("player %d does not exist", c.PlayerID), dberr.ErrForeignKey)
	}
	for _, existing := range r.db.captains {
		if existing.PlayerID == c.PlayerID {
			return duplicateError("captain %d already exists", c.PlayerID)
		}
	}
	r.db.captains = append(r.db.captains, c)
	return nil
}
