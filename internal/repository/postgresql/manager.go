package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tipl/employee-monitoring/internal/domain/manager"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
)

type managerRepository struct {
	db *database.DB
}

func NewManagerRepository(db *database.DB) manager.ManagerRepository {
	return &managerRepository{db: db}
}

// Create implements manager.ManagerRepository.
func (r *managerRepository) Create(ctx context.Context, m manager.Manager) (manager.Manager, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO managers (name, email, department)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, m.Name, m.Email, m.Department).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return manager.Manager{}, manager.ErrEmailExists
		}
		return manager.Manager{}, fmt.Errorf("failed to create manager: %w", err)
	}

	return m, nil
}

// GetByID implements manager.ManagerRepository.
func (r *managerRepository) GetByID(ctx context.Context, id string) (manager.Manager, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, department, created_at, updated_at
		FROM managers
		WHERE id = $1
	`

	var m manager.Manager
	err := q.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Department, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return manager.Manager{}, manager.ErrManagerNotFound
		}
		return manager.Manager{}, fmt.Errorf("failed to get manager by id: %w", err)
	}

	return m, nil
}

// List implements manager.ManagerRepository.
func (r *managerRepository) List(ctx context.Context) ([]manager.Manager, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.name, m.email, m.department, m.created_at, m.updated_at,
			   (SELECT COUNT(*) FROM employees e WHERE e.manager_id = m.id) AS employee_count,
			   (SELECT COUNT(*) FROM projects p WHERE p.manager_id = m.id) AS project_count
		FROM managers m
		ORDER BY m.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	defer rows.Close()

	var managers []manager.Manager
	for rows.Next() {
		var m manager.Manager
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Department, &m.CreatedAt, &m.UpdatedAt,
			&m.EmployeeCount, &m.ProjectCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan manager: %w", err)
		}
		managers = append(managers, m)
	}

	return managers, rows.Err()
}
