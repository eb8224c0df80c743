package task

import "context"

// TaskRepository defines data access methods for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, id string) error

	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]Task, error)
	List(ctx context.Context, filter ListFilter) ([]Task, error)

	// ListForStats returns tasks matching the stats filter, no joins.
	ListForStats(ctx context.Context, filter StatsFilter) ([]Task, error)
}
