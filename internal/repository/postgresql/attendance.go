package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tipl/employee-monitoring/internal/domain/attendance"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.status, a.is_late, a.location, a.device_info, a.ip_address,
	a.created_at, a.updated_at,
	e.name AS employee_name, e.sap_id AS employee_sap_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime,
		&a.Status, &a.IsLate, &a.Location, &a.DeviceInfo, &a.IPAddress,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.EmployeeSAPID,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, check_in_time, status, is_late, location, device_info, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.CheckInTime, att.Status, att.IsLate,
		att.Location, att.DeviceInfo, att.IPAddress,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// The (employee_id, date) constraint caught a racing check-in.
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// GetOpenByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2 AND a.check_out_time IS NULL
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return &att, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOutTime time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out_time = $2, updated_at = NOW()
		WHERE id = $1 AND check_out_time IS NULL
	`

	tag, err := q.Exec(ctx, query, id, checkOutTime)
	if err != nil {
		return fmt.Errorf("failed to set check-out time: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNoActiveCheckIn
	}

	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.RangeFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 30
	}

	query := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC
		LIMIT $%d
	`, baseWhere, argIdx)
	args = append(args, limit)

	return r.queryAttendances(ctx, q, query, args...)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.check_in_time ASC
	`

	return r.queryAttendances(ctx, q, query, date)
}

// ListForStats implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForStats(ctx context.Context, filter attendance.StatsFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.date >= $1 AND a.date <= $2"
	args := []interface{}{filter.StartDate, filter.EndDate}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += " AND a.employee_id = $3"
		args = append(args, *filter.EmployeeID)
	}

	query := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date ASC
	`, baseWhere)

	return r.queryAttendances(ctx, q, query, args...)
}

func (r *attendanceRepository) queryAttendances(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}
