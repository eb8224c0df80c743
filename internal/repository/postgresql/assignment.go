package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tipl/employee-monitoring/internal/domain/project"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
)

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) project.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create implements project.AssignmentRepository.
func (r *assignmentRepository) Create(ctx context.Context, a project.Assignment) (project.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_assignments (project_id, employee_id, completion_percentage, task_description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, assigned_at
	`

	err := q.QueryRow(ctx, query,
		a.ProjectID, a.EmployeeID, a.CompletionPercentage, a.TaskDescription,
	).Scan(&a.ID, &a.AssignedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return project.Assignment{}, project.ErrAlreadyAssigned
			case "23503": // foreign_key_violation
				return project.Assignment{}, project.ErrProjectNotFound
			}
		}
		return project.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a, nil
}

// GetByID implements project.AssignmentRepository.
func (r *assignmentRepository) GetByID(ctx context.Context, id string) (project.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.project_id, a.employee_id, a.completion_percentage, a.task_description,
			   a.assigned_at, a.completed_at, e.name AS employee_name, e.sap_id AS employee_sap_id
		FROM project_assignments a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var a project.Assignment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.ProjectID, &a.EmployeeID, &a.CompletionPercentage, &a.TaskDescription,
		&a.AssignedAt, &a.CompletedAt, &a.EmployeeName, &a.EmployeeSAPID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Assignment{}, project.ErrAssignmentNotFound
		}
		return project.Assignment{}, fmt.Errorf("failed to get assignment by id: %w", err)
	}

	return a, nil
}

// UpdateProgress implements project.AssignmentRepository.
func (r *assignmentRepository) UpdateProgress(ctx context.Context, a project.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE project_assignments
		SET completion_percentage = $2, completed_at = $3
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, a.ID, a.CompletionPercentage, a.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to update assignment progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrAssignmentNotFound
	}

	return nil
}
