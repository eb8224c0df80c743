package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotal(t *testing.T) {
	total := Total(d("50000"), d("2000"), d("3000"), d("1500"))
	assert.True(t, total.Equal(d("53500")), "Total = %s, want 53500", total)
}

func TestTotalZeroComponents(t *testing.T) {
	total := Total(d("50000"), decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, total.Equal(d("50000")))
}

func TestComputeOverviewEmpty(t *testing.T) {
	o := ComputeOverview(nil)
	assert.True(t, o.TotalOwed.IsZero())
	assert.True(t, o.TotalPaid.IsZero())
	assert.Equal(t, 0, o.PendingPayments)
}

func TestComputeOverview(t *testing.T) {
	records := []Record{
		{TotalAmount: d("53500"), IsPaid: true},
		{TotalAmount: d("48000"), IsPaid: false},
		{TotalAmount: d("61000"), IsPaid: false},
	}

	o := ComputeOverview(records)
	assert.True(t, o.TotalPaid.Equal(d("53500")), "TotalPaid = %s", o.TotalPaid)
	assert.True(t, o.TotalOwed.Equal(d("109000")), "TotalOwed = %s", o.TotalOwed)
	assert.Equal(t, 2, o.PendingPayments)
}

func TestCalculateRequestValidate(t *testing.T) {
	valid := CalculateRequest{
		EmployeeID:      "123e4567-e89b-12d3-a456-426614174000",
		Month:           3,
		Year:            2024,
		BaseSalary:      d("50000"),
		AttendanceBonus: d("2000"),
		CompletionBonus: decimal.Zero,
		Deduction:       decimal.Zero,
	}
	assert.NoError(t, valid.Validate())

	badMonth := valid
	badMonth.Month = 13
	assert.Error(t, badMonth.Validate())

	badYear := valid
	badYear.Year = 1999
	assert.Error(t, badYear.Validate())

	zeroBase := valid
	zeroBase.BaseSalary = decimal.Zero
	assert.Error(t, zeroBase.Validate())

	negativeDeduction := valid
	negativeDeduction.Deduction = d("-100")
	assert.Error(t, negativeDeduction.Validate())
}
