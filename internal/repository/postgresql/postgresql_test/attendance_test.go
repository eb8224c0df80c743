package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipl/employee-monitoring/internal/domain/attendance"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

var testDB *database.DB

// testMain skips the whole package when no test database is configured so
// these don't fail on machines without PostgreSQL.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(0)
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(context.Background(), dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}

	os.Exit(m.Run())
}

func truncateTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"audit_logs", "attendances", "salary_records", "tasks", "project_assignments", "projects", "employees", "managers", "users"} {
		_, err := testDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, sapID, email string) string {
	var employeeID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO employees (sap_id, name, email, department, position)
		VALUES ($1, 'Test Employee', $2, 'Engineering', 'Developer')
		RETURNING id
	`, sapID, email).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func TestAttendanceCheckInFlow(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewAttendanceRepository(testDB)
	employeeID := createTestEmployee(t, ctx, "SAP-0001", "emp1@example.com")

	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        date,
		CheckInTime: now,
		Status:      attendance.StatusPresent,
		IsLate:      true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// Second check-in on the same date hits the unique constraint.
	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        date,
		CheckInTime: now.Add(time.Minute),
		Status:      attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	open, err := repo.GetOpenByEmployeeAndDate(ctx, employeeID, date)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, created.ID, open.ID)
	assert.True(t, open.IsLate)

	checkOut := now.Add(8 * time.Hour)
	require.NoError(t, repo.SetCheckOut(ctx, open.ID, checkOut))

	// Once closed there is no open record left for the day.
	open, err = repo.GetOpenByEmployeeAndDate(ctx, employeeID, date)
	require.NoError(t, err)
	assert.Nil(t, open)

	full, err := repo.GetByEmployeeAndDate(ctx, employeeID, date)
	require.NoError(t, err)
	require.NotNil(t, full)
	require.NotNil(t, full.CheckOutTime)
}

func TestAttendanceListByDate(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewAttendanceRepository(testDB)
	emp1 := createTestEmployee(t, ctx, "SAP-0001", "emp1@example.com")
	emp2 := createTestEmployee(t, ctx, "SAP-0002", "emp2@example.com")

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	for _, seed := range []struct {
		employeeID string
		date       time.Time
	}{
		{emp1, today},
		{emp2, today},
		{emp1, yesterday},
	} {
		_, err := repo.Create(ctx, attendance.Attendance{
			EmployeeID:  seed.employeeID,
			Date:        seed.date,
			CheckInTime: seed.date.Add(9 * time.Hour),
			Status:      attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	records, err := repo.ListByDate(ctx, today)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	for _, r := range records {
		assert.NotNil(t, r.EmployeeName, "join should carry the employee name")
	}
}
