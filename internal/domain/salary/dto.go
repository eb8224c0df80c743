package salary

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tipl/employee-monitoring/internal/pkg/validator"
)

type CalculateRequest struct {
	EmployeeID      string          `json:"employee_id"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	AttendanceBonus decimal.Decimal `json:"attendance_bonus"`
	CompletionBonus decimal.Decimal `json:"completion_bonus"`
	Deduction       decimal.Decimal `json:"deduction"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be 2000 or later",
		})
	}

	if r.BaseSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be positive",
		})
	}

	if r.AttendanceBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_bonus",
			Message: "attendance_bonus must not be negative",
		})
	}

	if r.CompletionBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "completion_bonus",
			Message: "completion_bonus must not be negative",
		})
	}

	if r.Deduction.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction",
			Message: "deduction must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	EmployeeSAPID   *string         `json:"employee_sap_id,omitempty"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	AttendanceBonus decimal.Decimal `json:"attendance_bonus"`
	CompletionBonus decimal.Decimal `json:"completion_bonus"`
	Deduction       decimal.Decimal `json:"deduction"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	IsPaid          bool            `json:"is_paid"`
}

type OverviewResponse struct {
	TotalOwed       decimal.Decimal  `json:"total_owed"`
	TotalPaid       decimal.Decimal  `json:"total_paid"`
	PendingPayments int              `json:"pending_payments"`
	Records         []RecordResponse `json:"records"`
}

// SalaryService defines business logic for salary computation and payment.
type SalaryService interface {
	// Calculate is an idempotent upsert keyed by (employee, month, year).
	Calculate(ctx context.Context, req CalculateRequest) (RecordResponse, error)

	// MarkPaid is one-directional; paying an already-paid record succeeds.
	MarkPaid(ctx context.Context, recordID string) (RecordResponse, error)

	GetOverview(ctx context.Context) (OverviewResponse, error)
}
