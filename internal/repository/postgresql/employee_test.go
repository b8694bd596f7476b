package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/employee"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeTestColumns = []string{
	"id", "name", "email", "department", "position", "status",
	"avatar", "phone", "location", "join_date", "created_at", "updated_at",
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	now := time.Now().UTC()
	rows := pgxmock.NewRows(employeeTestColumns).
		AddRow("e1", "Ana", "ana@example.com", "Engineering", "Engineer", "active",
			nil, nil, nil, now, now, now)

	mock.ExpectQuery(`FROM employees WHERE id`).
		WithArgs("e1").
		WillReturnRows(rows)

	emp, err := repo.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", emp.Name)
	assert.Equal(t, employee.StatusActive, emp.Status)
	assert.Nil(t, emp.Phone)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(`FROM employees WHERE id`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(employeeTestColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_List_Filters(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	now := time.Now().UTC()
	rows := pgxmock.NewRows(employeeTestColumns).
		AddRow("e1", "Ana", "ana@example.com", "Engineering", "Engineer", "active",
			nil, nil, nil, now, now, now)

	mock.ExpectQuery(`FROM employees`).
		WithArgs("%ana%", "Engineering", "active").
		WillReturnRows(rows)

	employees, err := repo.List(context.Background(), employee.ListFilter{
		Query:      "ana",
		Department: "Engineering",
		Status:     "active",
	})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Ana", employees[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectExec(`DELETE FROM employees WHERE id`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
