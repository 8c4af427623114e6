package staff

import "context"

// Repository describes official and coordinator persistence needs from use cases.
type Repository interface {
	ListOfficials(ctx context.Context) ([]Official, error)
	ListCoordinators(ctx context.Context) ([]Coordinator, error)
	CreateOfficial(ctx context.Context, o Official) error
	CreateCoordinator(ctx context.Context, c Coordinator) error
	GetSalary(ctx context.Context, kind Kind, id int) (int, bool, error)
	UpdateSalary(ctx context.Context, kind Kind, id int, salary int) (bool, error)
}
