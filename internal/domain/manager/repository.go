package manager

import "context"

// ManagerRepository defines data access methods for managers.
type ManagerRepository interface {
	Create(ctx context.Context, manager Manager) (Manager, error)
	GetByID(ctx context.Context, id string) (Manager, error)

	// List returns managers with owned employee and project counts.
	List(ctx context.Context) ([]Manager, error)
}
