package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListRosters(ctx context.Context) ([]Roster, error)
	DeleteByKeys(ctx context.Context, keys []Key) (int64, error)
}
