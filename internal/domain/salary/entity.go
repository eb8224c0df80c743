package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one salary computation per employee per month. TotalAmount is
// derived at write time from the four components and never mutated on its
// own. IsPaid only ever moves false -> true.
type Record struct {
	ID              string
	EmployeeID      string
	Month           int
	Year            int
	BaseSalary      decimal.Decimal
	AttendanceBonus decimal.Decimal
	CompletionBonus decimal.Decimal
	Deduction       decimal.Decimal
	TotalAmount     decimal.Decimal
	IsPaid          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeSAPID *string
}

// Total computes base + attendance + completion - deduction.
func Total(base, attendance, completion, deduction decimal.Decimal) decimal.Decimal {
	return base.Add(attendance).Add(completion).Sub(deduction)
}
