package game

import (
	"context"
	"time"
)

// Repository describes game persistence needs from use cases. Delete and
// Reschedule report whether a game occupied the slot.
type Repository interface {
	ListAfter(ctx context.Context, day time.Time) ([]Game, error)
	Delete(ctx context.Context, slot Slot) (bool, error)
	Reschedule(ctx context.Context, from, to Slot) (bool, error)
}
