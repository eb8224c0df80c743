package attendance

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Location   *string `json:"location,omitempty"`
	DeviceInfo *string `json:"device_info,omitempty"`
	IPAddress  *string `json:"-"` // taken from the connection, not the body
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Location   *string `json:"location,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeFilter struct {
	StartDate *string
	EndDate   *string
	Limit     int
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a YYYY-MM-DD date",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatsFilter struct {
	StartDate  string
	EndDate    string
	EmployeeID *string
}

func (f *StatsFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(f.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a YYYY-MM-DD date",
		})
	}

	if validator.IsEmpty(f.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(f.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeSAPID *string `json:"employee_sap_id,omitempty"`
	Date          string  `json:"date"`
	CheckInTime   string  `json:"check_in_time"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	Status        string  `json:"status"`
	IsLate        bool    `json:"is_late"`
	Location      *string `json:"location,omitempty"`
}

type StatsResponse struct {
	TotalPresent   int     `json:"total_present"`
	TotalAbsent    int     `json:"total_absent"`
	TotalLate      int     `json:"total_late"`
	Total          int     `json:"total"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn records the start of an employee's day. Callers may check in
	// themselves; managers and admins may check in anyone.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the day's open record. Same authorization as CheckIn.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	GetByEmployee(ctx context.Context, employeeID string, filter RangeFilter) ([]AttendanceResponse, error)

	// GetTodayAll lists today's attendance across all employees.
	GetTodayAll(ctx context.Context) ([]AttendanceResponse, error)

	GetStats(ctx context.Context, filter StatsFilter) (StatsResponse, error)
}
