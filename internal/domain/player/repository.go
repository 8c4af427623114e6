package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Search(ctx context.Context, criteria []Criterion) ([]Player, error)
	Create(ctx context.Context, p Player) error
	ListNonCaptains(ctx context.Context) ([]Player, error)
}
