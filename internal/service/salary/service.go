package salary

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/domain/audit"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/employee"
	"github.com/tipl/employee-monitoring/internal/domain/salary"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

type SalaryServiceImpl struct {
	db           *database.DB
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
	auditRepo    audit.AuditRepository
}

func NewSalaryService(
	db *database.DB,
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	auditRepo audit.AuditRepository,
) *SalaryServiceImpl {
	return &SalaryServiceImpl{
		db:           db,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		auditRepo:    auditRepo,
	}
}

// Calculate implements salary.SalaryService. Recalculating an existing
// (employee, month, year) period overwrites the components and total but
// never resets a paid record to unpaid.
func (s *SalaryServiceImpl) Calculate(ctx context.Context, req salary.CalculateRequest) (salary.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.RecordResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.RecordResponse{}, err
	}

	total := salary.Total(req.BaseSalary, req.AttendanceBonus, req.CompletionBonus, req.Deduction)

	var record salary.Record
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		record, err = s.salaryRepo.Upsert(txCtx, salary.Record{
			EmployeeID:      req.EmployeeID,
			Month:           req.Month,
			Year:            req.Year,
			BaseSalary:      req.BaseSalary,
			AttendanceBonus: req.AttendanceBonus,
			CompletionBonus: req.CompletionBonus,
			Deduction:       req.Deduction,
			TotalAmount:     total,
		})
		if err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionSalaryCalculated,
			Entity:   "SalaryRecord",
			EntityID: &record.ID,
			Metadata: map[string]any{
				"employee_id":  req.EmployeeID,
				"month":        req.Month,
				"year":         req.Year,
				"total_amount": total.String(),
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return salary.RecordResponse{}, err
	}

	return mapRecordToResponse(record), nil
}

// MarkPaid implements salary.SalaryService.
func (s *SalaryServiceImpl) MarkPaid(ctx context.Context, recordID string) (salary.RecordResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	record, err := s.salaryRepo.GetByID(ctx, recordID)
	if err != nil {
		return salary.RecordResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.salaryRepo.MarkPaid(txCtx, recordID); err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionSalaryMarkedPaid,
			Entity:   "SalaryRecord",
			EntityID: &record.ID,
			Metadata: map[string]any{
				"employee_id":  record.EmployeeID,
				"month":        record.Month,
				"year":         record.Year,
				"total_amount": record.TotalAmount.String(),
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return salary.RecordResponse{}, err
	}

	record.IsPaid = true
	return mapRecordToResponse(record), nil
}

// GetOverview implements salary.SalaryService.
func (s *SalaryServiceImpl) GetOverview(ctx context.Context) (salary.OverviewResponse, error) {
	records, err := s.salaryRepo.List(ctx)
	if err != nil {
		return salary.OverviewResponse{}, err
	}

	overview := salary.ComputeOverview(records)

	resp := salary.OverviewResponse{
		TotalOwed:       overview.TotalOwed,
		TotalPaid:       overview.TotalPaid,
		PendingPayments: overview.PendingPayments,
		Records:         make([]salary.RecordResponse, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, mapRecordToResponse(r))
	}

	return resp, nil
}

func mapRecordToResponse(r salary.Record) salary.RecordResponse {
	return salary.RecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		EmployeeSAPID:   r.EmployeeSAPID,
		Month:           r.Month,
		Year:            r.Year,
		BaseSalary:      r.BaseSalary,
		AttendanceBonus: r.AttendanceBonus,
		CompletionBonus: r.CompletionBonus,
		Deduction:       r.Deduction,
		TotalAmount:     r.TotalAmount,
		IsPaid:          r.IsPaid,
	}
}
