package pruning

import "context"

// RoutineRepository is the registry the cleaning routine installs into.
// Register returns a duplicate-marked error when the name is taken.
type RoutineRepository interface {
	Register(ctx context.Context, routine Routine) error
	Unregister(ctx context.Context, name string) (bool, error)
	Get(ctx context.Context, name string) (Routine, bool, error)
}
