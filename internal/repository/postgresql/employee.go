package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tipl/employee-monitoring/internal/domain/employee"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.sap_id, e.name, e.email, e.department, e.position, e.role, e.status,
	e.user_id, e.manager_id, e.created_at, e.updated_at,
	m.name AS manager_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.SAPID, &e.Name, &e.Email, &e.Department, &e.Position, &e.Role, &e.Status,
		&e.UserID, &e.ManagerID, &e.CreatedAt, &e.UpdatedAt,
		&e.ManagerName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (sap_id, name, email, department, position, role, status, user_id, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.SAPID, e.Name, e.Email, e.Department, e.Position, e.Role, e.Status, e.UserID, e.ManagerID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "sap_id") {
				return employee.Employee{}, employee.ErrSAPIDExists
			}
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN managers m ON m.id = e.manager_id
		WHERE e.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

// GetBySAPIDOrEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetBySAPIDOrEmail(ctx context.Context, sapID string, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN managers m ON m.id = e.manager_id
		WHERE e.sap_id = $1 OR e.email = $2
		LIMIT 1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, sapID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by sap_id or email: %w", err)
	}

	return &e, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, department = $4, position = $5, role = $6,
			status = $7, manager_id = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		e.ID, e.Name, e.Email, e.Department, e.Position, e.Role, e.Status, e.ManagerID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return employee.ErrEmployeeHasDependents
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND e.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+employeeColumns+`
		FROM employees e
		LEFT JOIN managers m ON m.id = e.manager_id
		WHERE %s
		ORDER BY e.name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, total, rows.Err()
}

// Search implements employee.EmployeeRepository.
func (r *employeeRepository) Search(ctx context.Context, query string, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 || limit > 50 {
		limit = 20
	}

	sql := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN managers m ON m.id = e.manager_id
		WHERE e.name ILIKE $1 OR e.email ILIKE $1 OR e.sap_id ILIKE $1 OR e.department ILIKE $1
		ORDER BY e.name ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, sql, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// CountDependents implements employee.EmployeeRepository.
func (r *employeeRepository) CountDependents(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM attendances WHERE employee_id = $1) +
			(SELECT COUNT(*) FROM tasks WHERE employee_id = $1 OR assigned_by_id = $1) +
			(SELECT COUNT(*) FROM project_assignments WHERE employee_id = $1) +
			(SELECT COUNT(*) FROM salary_records WHERE employee_id = $1)
	`

	var count int64
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employee dependents: %w", err)
	}

	return count, nil
}
