package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/vetanhr/payroll-backend-go/internal/domain/employee"
	"github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	"github.com/vetanhr/payroll-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	tx           payroll.Transactor
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	rules        *payroll.RuleSet
}

func NewPayrollService(
	tx payroll.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	rules *payroll.RuleSet,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:           tx,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		rules:        rules,
	}
}

// Helper to get the caller's role from JWT context
func roleFromContext(ctx context.Context) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("role claim is missing or invalid")
	}

	return user.Role(role), nil
}

// ProcessRun executes payroll for one period. The caller must hold the hr or
// admin role; the check runs before any persistence is touched. Everything
// between lookup-or-create and the aggregate update happens in a single
// transaction, so a failure at any step leaves the previous run state intact.
func (s *PayrollServiceImpl) ProcessRun(ctx context.Context, req payroll.ProcessRunRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	role, err := roleFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	if !role.CanProcessPayroll() {
		return payroll.RunResponse{}, user.ErrHRPrivilegeRequired
	}

	var processed payroll.PayrollRun
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return fmt.Errorf("failed to load active employees: %w", err)
		}

		run, err := s.payrollRepo.GetRunByPeriod(ctx, req.Month, req.Year)
		if errors.Is(err, payroll.ErrRunNotFound) {
			run, err = s.payrollRepo.CreateRun(ctx, payroll.PayrollRun{
				PeriodMonth:      req.Month,
				PeriodYear:       req.Year,
				Status:           payroll.RunStatusPending,
				TotalGrossSalary: decimal.Zero,
				TotalDeductions:  decimal.Zero,
				TotalNetSalary:   decimal.Zero,
			})
		}
		if err != nil {
			return fmt.Errorf("failed to resolve payroll run: %w", err)
		}

		// Full replace: the run exclusively owns its calculations.
		if err := s.payrollRepo.DeleteCalculationsByRun(ctx, run.ID); err != nil {
			return fmt.Errorf("failed to clear previous calculations: %w", err)
		}

		totalGross := decimal.Zero
		totalDeductions := decimal.Zero
		totalNet := decimal.Zero

		calcs := make([]payroll.PayrollCalculation, 0, len(employees))
		for _, emp := range employees {
			b := payroll.ComputeDeductions(emp.Salary, emp.BasicSalary, emp.PFOptIn, emp.ESIApplicable)

			calc := payroll.PayrollCalculation{
				RunID:           run.ID,
				EmployeeID:      emp.ID,
				GrossEarnings:   emp.Salary,
				PFEmployee:      b.PFEmployee,
				ESIEmployee:     b.ESIEmployee,
				ProfessionalTax: b.ProfessionalTax,
				TDS:             b.TDS,
				OtherDeductions: b.OtherDeductions,
				TotalDeductions: b.TotalDeductions,
				NetPay:          b.NetPay,
			}
			s.rules.Apply(&calc)
			calcs = append(calcs, calc)

			totalGross = totalGross.Add(calc.GrossEarnings)
			totalDeductions = totalDeductions.Add(calc.TotalDeductions)
			totalNet = totalNet.Add(calc.NetPay)
		}

		if len(calcs) > 0 {
			if err := s.payrollRepo.CreateCalculations(ctx, calcs); err != nil {
				return fmt.Errorf("failed to insert calculations: %w", err)
			}
		}

		now := time.Now()
		run.Status = payroll.RunStatusProcessed
		run.ProcessedAt = &now
		run.TotalEmployees = len(employees)
		run.ProcessedEmployees = len(calcs)
		run.TotalGrossSalary = totalGross
		run.TotalDeductions = totalDeductions
		run.TotalNetSalary = totalNet

		processed, err = s.payrollRepo.UpdateRun(ctx, run)
		if err != nil {
			return fmt.Errorf("failed to update payroll run: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.RunResponse{}, err
	}

	// Re-read outside the transaction to pick up employee join fields.
	stored, err := s.payrollRepo.GetCalculationsByRun(ctx, processed.ID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return mapRunResponse(processed, stored), nil
}

func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	calcs, err := s.payrollRepo.GetCalculationsByRun(ctx, run.ID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return mapRunResponse(run, calcs), nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context, year *int) ([]payroll.RunResponse, error) {
	runs, err := s.payrollRepo.ListRuns(ctx, year)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, mapRunResponse(run, nil))
	}
	return result, nil
}

func mapRunResponse(run payroll.PayrollRun, calcs []payroll.PayrollCalculation) payroll.RunResponse {
	var processedAtStr *string
	if run.ProcessedAt != nil {
		str := run.ProcessedAt.Format(time.RFC3339)
		processedAtStr = &str
	}

	resp := payroll.RunResponse{
		ID:                 run.ID,
		PeriodMonth:        run.PeriodMonth,
		PeriodYear:         run.PeriodYear,
		Status:             string(run.Status),
		ProcessedAt:        processedAtStr,
		TotalEmployees:     run.TotalEmployees,
		ProcessedEmployees: run.ProcessedEmployees,
		TotalGrossSalary:   run.TotalGrossSalary,
		TotalDeductions:    run.TotalDeductions,
		TotalNetSalary:     run.TotalNetSalary,
	}

	for _, c := range calcs {
		resp.Calculations = append(resp.Calculations, payroll.CalculationResponse{
			ID:                 c.ID,
			EmployeeID:         c.EmployeeID,
			EmployeeCode:       c.EmployeeCode,
			EmployeeName:       c.EmployeeName,
			GrossEarnings:      c.GrossEarnings,
			PFEmployee:         c.PFEmployee,
			ESIEmployee:        c.ESIEmployee,
			ProfessionalTax:    c.ProfessionalTax,
			TDS:                c.TDS,
			OtherDeductions:    c.OtherDeductions,
			TotalDeductions:    c.TotalDeductions,
			NetPay:             c.NetPay,
			IsValid:            c.IsValid,
			ValidationErrors:   c.ValidationErrors,
			ValidationWarnings: c.ValidationWarnings,
		})
	}

	return resp
}
