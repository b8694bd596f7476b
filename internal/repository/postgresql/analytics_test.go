package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/Core-Staff/core-staff/internal/pkg/database"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &database.DB{Pool: mock}
}

func TestAnalyticsRepository_ListEmployees(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	rows := pgxmock.NewRows([]string{"id", "name", "department"}).
		AddRow("e1", "Ana", "Engineering").
		AddRow("e2", "Ben", "Sales")

	mock.ExpectQuery(`SELECT id, name, department\s+FROM employees`).
		WillReturnRows(rows)

	refs, err := repo.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "Ana", refs[0].Name)
	assert.Equal(t, "Sales", refs[1].Department)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_ListAttendanceEvents(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	clockIn := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"employee_id", "clock_in"}).
		AddRow("e1", clockIn)

	mock.ExpectQuery(`SELECT employee_id, clock_in\s+FROM attendance_logs`).
		WithArgs(start, end).
		WillReturnRows(rows)

	events, err := repo.ListAttendanceEvents(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].EmployeeID)
	assert.True(t, events[0].ClockIn.Equal(clockIn))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_CountLeaveRequests(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leave_requests`).
		WithArgs(start, end, "pending").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountLeaveRequests(context.Background(), start, end, "pending")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// An empty status counts every request in the range.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM leave_requests`).
		WithArgs(start, end).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err = repo.CountLeaveRequests(context.Background(), start, end, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_CountEmployeesJoinedBy(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	cutoff := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees WHERE join_date`).
		WithArgs(cutoff).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := repo.CountEmployeesJoinedBy(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)

	require.NoError(t, mock.ExpectationsWereMet())
}
