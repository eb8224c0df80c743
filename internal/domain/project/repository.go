package project

import "context"

// ProjectRepository defines data access methods for projects and their
// assignments.
type ProjectRepository interface {
	Create(ctx context.Context, project Project) (Project, error)

	// GetByID loads the project with its assignments (employee names joined).
	GetByID(ctx context.Context, id string) (Project, error)

	// List loads all projects with their assignments, newest first.
	List(ctx context.Context) ([]Project, error)
}

// AssignmentRepository defines data access methods for project assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)

	// UpdateProgress persists the percentage and the matching completed_at in
	// one statement.
	UpdateProgress(ctx context.Context, assignment Assignment) error
}
