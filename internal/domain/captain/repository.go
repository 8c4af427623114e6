package captain

import "context"

type Repository interface {
	Create(ctx context.Context, c Captain) error
}
