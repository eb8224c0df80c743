package postgresql_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipl/employee-monitoring/internal/domain/salary"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

func TestSalaryUpsertPreservesPaidFlag(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewSalaryRepository(testDB)
	employeeID := createTestEmployee(t, ctx, "SAP-0001", "emp1@example.com")

	base := decimal.RequireFromString("50000")
	first, err := repo.Upsert(ctx, salary.Record{
		EmployeeID:      employeeID,
		Month:           3,
		Year:            2024,
		BaseSalary:      base,
		AttendanceBonus: decimal.RequireFromString("2000"),
		CompletionBonus: decimal.Zero,
		Deduction:       decimal.Zero,
		TotalAmount:     decimal.RequireFromString("52000"),
	})
	require.NoError(t, err)
	assert.False(t, first.IsPaid)

	require.NoError(t, repo.MarkPaid(ctx, first.ID))

	// Recalculating the same period overwrites the amounts but the record
	// stays paid.
	second, err := repo.Upsert(ctx, salary.Record{
		EmployeeID:      employeeID,
		Month:           3,
		Year:            2024,
		BaseSalary:      base,
		AttendanceBonus: decimal.Zero,
		CompletionBonus: decimal.RequireFromString("5000"),
		Deduction:       decimal.RequireFromString("1000"),
		TotalAmount:     decimal.RequireFromString("54000"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same period should reuse the row")
	assert.True(t, second.IsPaid)
	assert.True(t, second.TotalAmount.Equal(decimal.RequireFromString("54000")))
}

func TestSalaryMarkPaidIdempotent(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewSalaryRepository(testDB)
	employeeID := createTestEmployee(t, ctx, "SAP-0002", "emp2@example.com")

	record, err := repo.Upsert(ctx, salary.Record{
		EmployeeID:  employeeID,
		Month:       4,
		Year:        2024,
		BaseSalary:  decimal.RequireFromString("40000"),
		TotalAmount: decimal.RequireFromString("40000"),
	})
	require.NoError(t, err)

	require.NoError(t, repo.MarkPaid(ctx, record.ID))
	require.NoError(t, repo.MarkPaid(ctx, record.ID), "paying twice must not error")

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaid)
}

func TestSalaryMarkPaidUnknownRecord(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewSalaryRepository(testDB)
	err := repo.MarkPaid(ctx, "123e4567-e89b-12d3-a456-426614174000")
	assert.ErrorIs(t, err, salary.ErrRecordNotFound)
}
