package announcement

import "context"

type Repository interface {
	Create(ctx context.Context, a Announcement) error
}
