package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tipl/employee-monitoring/internal/domain/salary"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

// Upsert implements salary.SalaryRepository. The (employee_id, month, year)
// unique constraint drives the conflict branch; is_paid is left untouched so
// recalculating a paid period cannot un-pay it.
func (r *salaryRepository) Upsert(ctx context.Context, rec salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records
			(employee_id, month, year, base_salary, attendance_bonus, completion_bonus, deduction, total_amount, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			base_salary      = EXCLUDED.base_salary,
			attendance_bonus = EXCLUDED.attendance_bonus,
			completion_bonus = EXCLUDED.completion_bonus,
			deduction        = EXCLUDED.deduction,
			total_amount     = EXCLUDED.total_amount,
			updated_at       = NOW()
		RETURNING id, is_paid, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Month, rec.Year,
		rec.BaseSalary, rec.AttendanceBonus, rec.CompletionBonus, rec.Deduction, rec.TotalAmount,
	).Scan(&rec.ID, &rec.IsPaid, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return rec, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.year,
			   s.base_salary, s.attendance_bonus, s.completion_bonus, s.deduction, s.total_amount,
			   s.is_paid, s.created_at, s.updated_at,
			   e.name AS employee_name, e.sap_id AS employee_sap_id
		FROM salary_records s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	var rec salary.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
		&rec.BaseSalary, &rec.AttendanceBonus, &rec.CompletionBonus, &rec.Deduction, &rec.TotalAmount,
		&rec.IsPaid, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeSAPID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Record{}, salary.ErrRecordNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record by id: %w", err)
	}

	return rec, nil
}

// MarkPaid implements salary.SalaryRepository.
func (r *salaryRepository) MarkPaid(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// No is_paid guard in WHERE: paying twice is an allowed no-op.
	query := `
		UPDATE salary_records
		SET is_paid = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark salary record paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrRecordNotFound
	}

	return nil
}

// List implements salary.SalaryRepository.
func (r *salaryRepository) List(ctx context.Context) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.year,
			   s.base_salary, s.attendance_bonus, s.completion_bonus, s.deduction, s.total_amount,
			   s.is_paid, s.created_at, s.updated_at,
			   e.name AS employee_name, e.sap_id AS employee_sap_id
		FROM salary_records s
		LEFT JOIN employees e ON e.id = s.employee_id
		ORDER BY s.year DESC, s.month DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.Record
	for rows.Next() {
		var rec salary.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
			&rec.BaseSalary, &rec.AttendanceBonus, &rec.CompletionBonus, &rec.Deduction, &rec.TotalAmount,
			&rec.IsPaid, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeSAPID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
