package postgresql_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetanhr/payroll-backend-go/internal/domain/employee"
	"github.com/vetanhr/payroll-backend-go/internal/repository/postgresql"
)

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	emp := createTestEmployee(t, ctx, "EMP-0010")

	fetched, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "EMP-0010", fetched.EmployeeCode)
	assert.True(t, fetched.Salary.Equal(decimal.RequireFromString("50000")))
	assert.Equal(t, employee.StatusActive, fetched.Status)
}

func TestEmployeeRepository_DuplicateCode(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	first := createTestEmployee(t, ctx, "EMP-0011")

	_, err := repo.Create(ctx, employee.Employee{
		EmployeeCode: first.EmployeeCode,
		FullName:     "Duplicate",
		Email:        "duplicate@vetanhr.test",
		JoiningDate:  first.JoiningDate,
		Status:       employee.StatusActive,
		Salary:       decimal.RequireFromString("30000"),
		BasicSalary:  decimal.RequireFromString("15000"),
		HRA:          decimal.Zero,
		Allowances:   decimal.Zero,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeRepository_GetActiveExcludesInactiveAndDeleted(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	active := createTestEmployee(t, ctx, "EMP-0012")
	inactive := createTestEmployee(t, ctx, "EMP-0013")
	deleted := createTestEmployee(t, ctx, "EMP-0014")

	require.NoError(t, repo.SetStatus(ctx, inactive.ID, employee.StatusInactive))
	require.NoError(t, repo.Delete(ctx, deleted.ID))

	result, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, active.ID, result[0].ID)

	// soft deleted rows are invisible to GetByID too
	_, err = repo.GetByID(ctx, deleted.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ListFilterAndSearch(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	createTestEmployee(t, ctx, "EMP-0020")
	other := createTestEmployee(t, ctx, "EMP-0021")
	require.NoError(t, repo.SetStatus(ctx, other.ID, employee.StatusInactive))

	status := "inactive"
	result, total, err := repo.List(ctx, employee.EmployeeFilter{Status: &status, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, result, 1)
	assert.Equal(t, "EMP-0021", result[0].EmployeeCode)

	search := "0020"
	result, total, err = repo.List(ctx, employee.EmployeeFilter{Search: &search, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, result, 1)
	assert.Equal(t, "EMP-0020", result[0].EmployeeCode)
}
