package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/tipl/employee-monitoring/internal/domain/attendance"
	"github.com/tipl/employee-monitoring/internal/domain/audit"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/employee"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	auditRepo      audit.AuditRepository
	cutoffHour     int
	cutoffMinute   int
	location       *time.Location

	// now is swappable in tests
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	auditRepo audit.AuditRepository,
	cutoffHour, cutoffMinute int,
	location *time.Location,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		auditRepo:      auditRepo,
		cutoffHour:     cutoffHour,
		cutoffMinute:   cutoffMinute,
		location:       location,
		now:            time.Now,
	}
}

// authorize allows the employee themself, or any manager/admin.
func authorize(session auth.Session, employeeID string) error {
	if session.OwnsEmployee(employeeID) || session.IsManager() {
		return nil
	}
	return attendance.ErrNotOwnAttendance
}

// today returns the current local time and its calendar date (midnight).
func (a *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := a.now().In(a.location)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.location)
	return now, date
}

// CheckIn implements attendance.AttendanceService. The per-day state machine
// only permits NONE -> CHECKED_IN; an existing row for today means the
// transition already happened and the call conflicts.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := authorize(session, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now, date := a.today()

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	isLate := attendance.IsLateAt(now, a.cutoffHour, a.cutoffMinute)

	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		// The (employee_id, date) unique constraint backstops the existence
		// check above against racing requests.
		created, err = a.attendanceRepo.Create(txCtx, attendance.Attendance{
			EmployeeID:  req.EmployeeID,
			Date:        date,
			CheckInTime: now,
			Status:      attendance.StatusPresent,
			IsLate:      isLate,
			Location:    req.Location,
			DeviceInfo:  req.DeviceInfo,
			IPAddress:   req.IPAddress,
		})
		if err != nil {
			return err
		}

		return a.auditRepo.Record(txCtx, audit.Entry{
			UserID:    session.UserID,
			UserName:  session.Name,
			Action:    audit.ActionAttendanceCheckIn,
			Entity:    "Attendance",
			EntityID:  &created.ID,
			IPAddress: req.IPAddress,
			Metadata: map[string]any{
				"employee_id": req.EmployeeID,
				"is_late":     isLate,
				"location":    req.Location,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. Only valid from
// CHECKED_IN; the day's state is terminal once checked out.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := authorize(session, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now, date := a.today()

	open, err := a.attendanceRepo.GetOpenByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to find open check-in: %w", err)
	}
	if open == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveCheckIn
	}

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.attendanceRepo.SetCheckOut(txCtx, open.ID, now); err != nil {
			return err
		}

		return a.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionAttendanceCheckOut,
			Entity:   "Attendance",
			EntityID: &open.ID,
			Metadata: map[string]any{
				"employee_id": req.EmployeeID,
				"location":    req.Location,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open.CheckOutTime = &now
	return mapAttendanceToResponse(*open), nil
}

// GetByEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetByEmployee(ctx context.Context, employeeID string, filter attendance.RangeFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorize(session, employeeID); err != nil {
		return nil, err
	}

	records, err := a.attendanceRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}

	return mapAttendancesToResponses(records), nil
}

// GetTodayAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayAll(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	_, date := a.today()

	records, err := a.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return mapAttendancesToResponses(records), nil
}

// GetStats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStats(ctx context.Context, filter attendance.StatsFilter) (attendance.StatsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	records, err := a.attendanceRepo.ListForStats(ctx, filter)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	var stats attendance.StatsResponse
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			stats.TotalPresent++
		case attendance.StatusAbsent:
			stats.TotalAbsent++
		}
		if r.IsLate {
			stats.TotalLate++
		}
	}
	stats.Total = len(records)
	if stats.Total > 0 {
		stats.AttendanceRate = float64(stats.TotalPresent) / float64(stats.Total) * 100
	}

	return stats, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func mapAttendanceToResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		EmployeeSAPID: a.EmployeeSAPID,
		Date:          a.Date.Format("2006-01-02"),
		CheckInTime:   a.CheckInTime.Format("2006-01-02 15:04:05"),
		CheckOutTime:  timePtrToString(a.CheckOutTime),
		Status:        string(a.Status),
		IsLate:        a.IsLate,
		Location:      a.Location,
	}
}

func mapAttendancesToResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapAttendanceToResponse(r))
	}
	return result
}
