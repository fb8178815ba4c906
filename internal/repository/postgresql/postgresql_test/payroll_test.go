package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetanhr/payroll-backend-go/internal/domain/employee"
	"github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	"github.com/vetanhr/payroll-backend-go/internal/repository/postgresql"
)

func createTestEmployee(t *testing.T, ctx context.Context, code string) employee.Employee {
	t.Helper()
	repo := postgresql.NewEmployeeRepository(getTestDB(t))

	emp, err := repo.Create(ctx, employee.Employee{
		EmployeeCode:  code,
		FullName:      "Test Employee " + code,
		Email:         code + "@vetanhr.test",
		JoiningDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:        employee.StatusActive,
		Salary:        decimal.RequireFromString("50000"),
		BasicSalary:   decimal.RequireFromString("20000"),
		HRA:           decimal.RequireFromString("10000"),
		Allowances:    decimal.RequireFromString("20000"),
		PFOptIn:       true,
		ESIApplicable: true,
	})
	require.NoError(t, err)
	return emp
}

func TestPayrollRepository_RunLifecycle(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(db)

	_, err := repo.GetRunByPeriod(ctx, 8, 2025)
	assert.ErrorIs(t, err, payroll.ErrRunNotFound)

	run, err := repo.CreateRun(ctx, payroll.PayrollRun{
		PeriodMonth:      8,
		PeriodYear:       2025,
		Status:           payroll.RunStatusPending,
		TotalGrossSalary: decimal.Zero,
		TotalDeductions:  decimal.Zero,
		TotalNetSalary:   decimal.Zero,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, payroll.RunStatusPending, run.Status)

	// creating again for the same period returns the existing row
	again, err := repo.CreateRun(ctx, payroll.PayrollRun{
		PeriodMonth:      8,
		PeriodYear:       2025,
		Status:           payroll.RunStatusPending,
		TotalGrossSalary: decimal.Zero,
		TotalDeductions:  decimal.Zero,
		TotalNetSalary:   decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, run.ID, again.ID)

	fetched, err := repo.GetRunByPeriod(ctx, 8, 2025)
	require.NoError(t, err)
	assert.Equal(t, run.ID, fetched.ID)
}

func TestPayrollRepository_CalculationsReplace(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(db)

	emp1 := createTestEmployee(t, ctx, "EMP-0001")
	emp2 := createTestEmployee(t, ctx, "EMP-0002")

	run, err := repo.CreateRun(ctx, payroll.PayrollRun{
		PeriodMonth:      8,
		PeriodYear:       2025,
		Status:           payroll.RunStatusPending,
		TotalGrossSalary: decimal.Zero,
		TotalDeductions:  decimal.Zero,
		TotalNetSalary:   decimal.Zero,
	})
	require.NoError(t, err)

	calc := func(empID string) payroll.PayrollCalculation {
		b := payroll.ComputeDeductions(
			decimal.RequireFromString("50000"),
			decimal.RequireFromString("20000"),
			true, true,
		)
		return payroll.PayrollCalculation{
			RunID:              run.ID,
			EmployeeID:         empID,
			GrossEarnings:      decimal.RequireFromString("50000"),
			PFEmployee:         b.PFEmployee,
			ESIEmployee:        b.ESIEmployee,
			ProfessionalTax:    b.ProfessionalTax,
			TDS:                b.TDS,
			OtherDeductions:    b.OtherDeductions,
			TotalDeductions:    b.TotalDeductions,
			NetPay:             b.NetPay,
			IsValid:            true,
			ValidationErrors:   []string{},
			ValidationWarnings: []string{},
		}
	}

	require.NoError(t, repo.CreateCalculations(ctx, []payroll.PayrollCalculation{calc(emp1.ID), calc(emp2.ID)}))

	stored, err := repo.GetCalculationsByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	// join fields come back populated and ordered by employee code
	require.NotNil(t, stored[0].EmployeeCode)
	assert.Equal(t, "EMP-0001", *stored[0].EmployeeCode)
	require.NotNil(t, stored[0].EmployeeName)

	// replace wholesale with one employee
	require.NoError(t, repo.DeleteCalculationsByRun(ctx, run.ID))
	require.NoError(t, repo.CreateCalculations(ctx, []payroll.PayrollCalculation{calc(emp1.ID)}))

	stored, err = repo.GetCalculationsByRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestPayrollRepository_DecimalRoundTrip(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(db)

	emp := createTestEmployee(t, ctx, "EMP-0003")
	run, err := repo.CreateRun(ctx, payroll.PayrollRun{
		PeriodMonth:      1,
		PeriodYear:       2025,
		Status:           payroll.RunStatusPending,
		TotalGrossSalary: decimal.Zero,
		TotalDeductions:  decimal.Zero,
		TotalNetSalary:   decimal.Zero,
	})
	require.NoError(t, err)

	tds := decimal.RequireFromString("833.30")
	require.NoError(t, repo.CreateCalculations(ctx, []payroll.PayrollCalculation{{
		RunID:              run.ID,
		EmployeeID:         emp.ID,
		GrossEarnings:      decimal.RequireFromString("50000"),
		PFEmployee:         decimal.RequireFromString("1800"),
		ProfessionalTax:    decimal.RequireFromString("200"),
		TDS:                tds,
		TotalDeductions:    decimal.RequireFromString("2833.30"),
		NetPay:             decimal.RequireFromString("47166.70"),
		IsValid:            true,
		ValidationErrors:   []string{},
		ValidationWarnings: []string{},
	}}))

	stored, err := repo.GetCalculationsByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].TDS.Equal(tds), "TDS = %s", stored[0].TDS)
}

func TestPayrollRepository_GetRunByIDNotFound(t *testing.T) {
	db := getTestDB(t)
	repo := postgresql.NewPayrollRepository(db)

	_, err := repo.GetRunByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.True(t, errors.Is(err, payroll.ErrRunNotFound))
}
