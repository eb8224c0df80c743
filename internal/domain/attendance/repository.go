package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance row. The storage layer enforces the
	// (employee_id, date) uniqueness; a violation is returned as
	// ErrAlreadyCheckedIn so racing requests cannot create duplicates.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetOpenByEmployeeAndDate retrieves the day's record with no checkout
	// yet. Returns nil when the employee has no open check-in for that date.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetCheckOut stamps the checkout time on an open record.
	SetCheckOut(ctx context.Context, id string, checkOutTime time.Time) error

	ListByEmployee(ctx context.Context, employeeID string, filter RangeFilter) ([]Attendance, error)

	// ListByDate returns all records for one calendar date, check-in order.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListForStats returns records in a date range, optionally one employee.
	ListForStats(ctx context.Context, filter StatsFilter) ([]Attendance, error)
}
