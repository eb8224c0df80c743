package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tipl/employee-monitoring/internal/domain/task"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `
	t.id, t.employee_id, t.assigned_by_id, t.title, t.description, t.priority, t.status,
	t.due_date, t.started_at, t.completed_at, t.comments, t.attachments,
	t.created_at, t.updated_at,
	e.name AS employee_name, e.sap_id AS employee_sap_id, ab.name AS assigned_by_name
`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.AssignedByID, &t.Title, &t.Description, &t.Priority, &t.Status,
		&t.DueDate, &t.StartedAt, &t.CompletedAt, &t.Comments, &t.Attachments,
		&t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName, &t.EmployeeSAPID, &t.AssignedByName,
	)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (employee_id, assigned_by_id, title, description, priority, status, due_date, attachments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.EmployeeID, t.AssignedByID, t.Title, t.Description, t.Priority, t.Status, t.DueDate, t.Attachments,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		LEFT JOIN employees e ON e.id = t.employee_id
		LEFT JOIN employees ab ON ab.id = t.assigned_by_id
		WHERE t.id = $1
	`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return t, nil
}

// Update implements task.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $2, started_at = $3, completed_at = $4, comments = $5,
			attachments = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		t.ID, t.Status, t.StartedAt, t.CompletedAt, t.Comments, t.Attachments,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// Delete implements task.TaskRepository.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// ListByEmployee implements task.TaskRepository.
func (r *taskRepository) ListByEmployee(ctx context.Context, employeeID string, filter task.ListFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "t.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND t.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT `+taskColumns+`
		FROM tasks t
		LEFT JOIN employees e ON e.id = t.employee_id
		LEFT JOIN employees ab ON ab.id = t.assigned_by_id
		WHERE %s
		ORDER BY
			CASE t.priority WHEN 'URGENT' THEN 0 WHEN 'HIGH' THEN 1 WHEN 'MEDIUM' THEN 2 ELSE 3 END,
			t.created_at DESC
		LIMIT $%d
	`, baseWhere, argIdx)
	args = append(args, limit)

	return r.queryTasks(ctx, q, query, args...)
}

// List implements task.TaskRepository.
func (r *taskRepository) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND t.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Priority != nil && *filter.Priority != "" {
		baseWhere += fmt.Sprintf(" AND t.priority = $%d", argIdx)
		args = append(args, *filter.Priority)
		argIdx++
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT `+taskColumns+`
		FROM tasks t
		LEFT JOIN employees e ON e.id = t.employee_id
		LEFT JOIN employees ab ON ab.id = t.assigned_by_id
		WHERE %s
		ORDER BY
			CASE t.priority WHEN 'URGENT' THEN 0 WHEN 'HIGH' THEN 1 WHEN 'MEDIUM' THEN 2 ELSE 3 END,
			t.created_at DESC
		LIMIT $%d
	`, baseWhere, argIdx)
	args = append(args, limit)

	return r.queryTasks(ctx, q, query, args...)
}

// ListForStats implements task.TaskRepository.
func (r *taskRepository) ListForStats(ctx context.Context, filter task.StatsFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND t.created_at >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND t.created_at <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.employee_id, t.assigned_by_id, t.title, t.description, t.priority, t.status,
			   t.due_date, t.started_at, t.completed_at, t.comments, t.attachments,
			   t.created_at, t.updated_at
		FROM tasks t
		WHERE %s
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for stats: %w", err)
	}
	defer rows.Close()

	var result []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(
			&t.ID, &t.EmployeeID, &t.AssignedByID, &t.Title, &t.Description, &t.Priority, &t.Status,
			&t.DueDate, &t.StartedAt, &t.CompletedAt, &t.Comments, &t.Attachments,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		result = append(result, t)
	}

	return result, rows.Err()
}

func (r *taskRepository) queryTasks(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]task.Task, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var result []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		result = append(result, t)
	}

	return result, rows.Err()
}
