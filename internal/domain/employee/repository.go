package employee

import "context"

// EmployeeRepository defines data access methods for employee profiles.
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetBySAPIDOrEmail is used to enforce global uniqueness before insert.
	// Returns nil when no employee matches either value.
	GetBySAPIDOrEmail(ctx context.Context, sapID string, email string) (*Employee, error)

	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Search(ctx context.Context, query string, limit int) ([]Employee, error)

	// CountDependents counts attendance, task, assignment and salary rows that
	// reference the employee. Deletion is restricted while any exist.
	CountDependents(ctx context.Context, id string) (int64, error)
}
