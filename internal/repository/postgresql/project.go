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

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (name, description, start_date, end_date, status, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Name, p.Description, p.StartDate, p.EndDate, p.Status, p.ManagerID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.description, p.start_date, p.end_date, p.status, p.manager_id,
			   p.created_at, p.updated_at, m.name AS manager_name
		FROM projects p
		LEFT JOIN managers m ON m.id = p.manager_id
		WHERE p.id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Status, &p.ManagerID,
		&p.CreatedAt, &p.UpdatedAt, &p.ManagerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}

	assignments, err := r.assignmentsByProject(ctx, q, []string{p.ID})
	if err != nil {
		return project.Project{}, err
	}
	p.Assignments = assignments[p.ID]

	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.description, p.start_date, p.end_date, p.status, p.manager_id,
			   p.created_at, p.updated_at, m.name AS manager_name
		FROM projects p
		LEFT JOIN managers m ON m.id = p.manager_id
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	var ids []string
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Status, &p.ManagerID,
			&p.CreatedAt, &p.UpdatedAt, &p.ManagerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return projects, nil
	}

	byProject, err := r.assignmentsByProject(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Assignments = byProject[projects[i].ID]
	}

	return projects, nil
}

func (r *projectRepository) assignmentsByProject(ctx context.Context, q database.Querier, projectIDs []string) (map[string][]project.Assignment, error) {
	query := `
		SELECT a.id, a.project_id, a.employee_id, a.completion_percentage, a.task_description,
			   a.assigned_at, a.completed_at, e.name AS employee_name, e.sap_id AS employee_sap_id
		FROM project_assignments a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.project_id = ANY($1)
		ORDER BY a.assigned_at DESC
	`

	rows, err := q.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list project assignments: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]project.Assignment)
	for rows.Next() {
		var a project.Assignment
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.EmployeeID, &a.CompletionPercentage, &a.TaskDescription,
			&a.AssignedAt, &a.CompletedAt, &a.EmployeeName, &a.EmployeeSAPID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		result[a.ProjectID] = append(result[a.ProjectID], a)
	}

	return result, rows.Err()
}
