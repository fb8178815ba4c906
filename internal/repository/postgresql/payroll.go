package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const runColumns = `id, period_month, period_year, status, processed_at,
		total_employees, processed_employees,
		total_gross_salary, total_deductions, total_net_salary,
		created_at, updated_at`

// GetRunByPeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetRunByPeriod(ctx context.Context, month, year int) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE period_month = $1 AND period_year = $2`

	run, err := scanRun(q.QueryRow(ctx, query, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run for %d-%02d: %w", year, month, err)
	}
	return run, nil
}

// GetRunByID implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE id = $1`

	run, err := scanRun(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run %s: %w", id, err)
	}
	return run, nil
}

// CreateRun implements payroll.PayrollRepository. The unique constraint on
// (period_month, period_year) serializes concurrent runs for one period.
func (p *payrollRepositoryImpl) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_runs (
			period_month, period_year, status,
			total_employees, processed_employees,
			total_gross_salary, total_deductions, total_net_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (period_month, period_year) DO NOTHING
		RETURNING ` + runColumns

	created, err := scanRun(q.QueryRow(ctx, query,
		run.PeriodMonth, run.PeriodYear, run.Status,
		run.TotalEmployees, run.ProcessedEmployees,
		run.TotalGrossSalary, run.TotalDeductions, run.TotalNetSalary,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// lost the race, the period's run already exists
			return p.GetRunByPeriod(ctx, run.PeriodMonth, run.PeriodYear)
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}
	return created, nil
}

// UpdateRun implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) UpdateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_runs
		SET status = $1, processed_at = $2,
			total_employees = $3, processed_employees = $4,
			total_gross_salary = $5, total_deductions = $6, total_net_salary = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + runColumns

	updated, err := scanRun(q.QueryRow(ctx, query,
		run.Status, run.ProcessedAt,
		run.TotalEmployees, run.ProcessedEmployees,
		run.TotalGrossSalary, run.TotalDeductions, run.TotalNetSalary,
		run.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to update payroll run %s: %w", run.ID, err)
	}
	return updated, nil
}

// ListRuns implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListRuns(ctx context.Context, year *int) ([]payroll.PayrollRun, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs`
	args := []interface{}{}
	if year != nil {
		query += ` WHERE period_year = $1`
		args = append(args, *year)
	}
	query += ` ORDER BY period_year DESC, period_month DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// DeleteCalculationsByRun implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) DeleteCalculationsByRun(ctx context.Context, runID string) error {
	q := GetQuerier(ctx, p.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_calculations WHERE run_id = $1`, runID); err != nil {
		return fmt.Errorf("failed to delete calculations for run %s: %w", runID, err)
	}
	return nil
}

// CreateCalculations implements payroll.PayrollRepository using a single
// batched round trip.
func (p *payrollRepositoryImpl) CreateCalculations(ctx context.Context, calcs []payroll.PayrollCalculation) error {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_calculations (
			run_id, employee_id, gross_earnings,
			pf_employee, esi_employee, professional_tax, tds, other_deductions,
			total_deductions, net_pay,
			is_valid, validation_errors, validation_warnings
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	batch := &pgx.Batch{}
	for _, c := range calcs {
		batch.Queue(query,
			c.RunID, c.EmployeeID, c.GrossEarnings,
			c.PFEmployee, c.ESIEmployee, c.ProfessionalTax, c.TDS, c.OtherDeductions,
			c.TotalDeductions, c.NetPay,
			c.IsValid, c.ValidationErrors, c.ValidationWarnings,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range calcs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert payroll calculation: %w", err)
		}
	}
	return nil
}

// GetCalculationsByRun implements payroll.PayrollRepository, joining employee
// code and name for display.
func (p *payrollRepositoryImpl) GetCalculationsByRun(ctx context.Context, runID string) ([]payroll.PayrollCalculation, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT c.id, c.run_id, c.employee_id, c.gross_earnings,
			c.pf_employee, c.esi_employee, c.professional_tax, c.tds, c.other_deductions,
			c.total_deductions, c.net_pay,
			c.is_valid, c.validation_errors, c.validation_warnings, c.created_at,
			e.employee_code, e.full_name
		FROM payroll_calculations c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.run_id = $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations for run %s: %w", runID, err)
	}
	defer rows.Close()

	var calcs []payroll.PayrollCalculation
	for rows.Next() {
		var c payroll.PayrollCalculation
		err := rows.Scan(
			&c.ID, &c.RunID, &c.EmployeeID, &c.GrossEarnings,
			&c.PFEmployee, &c.ESIEmployee, &c.ProfessionalTax, &c.TDS, &c.OtherDeductions,
			&c.TotalDeductions, &c.NetPay,
			&c.IsValid, &c.ValidationErrors, &c.ValidationWarnings, &c.CreatedAt,
			&c.EmployeeCode, &c.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return calcs, nil
}

func scanRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	err := row.Scan(
		&run.ID, &run.PeriodMonth, &run.PeriodYear, &run.Status, &run.ProcessedAt,
		&run.TotalEmployees, &run.ProcessedEmployees,
		&run.TotalGrossSalary, &run.TotalDeductions, &run.TotalNetSalary,
		&run.CreatedAt, &run.UpdatedAt,
	)
	return run, err
}
