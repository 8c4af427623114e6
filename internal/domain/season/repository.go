package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	ListEnrollments(ctx context.Context) ([]Enrollment, error)
	DeleteByKeys(ctx context.Context, keys []Key) (int64, error)
}
