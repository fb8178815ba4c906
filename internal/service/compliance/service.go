package compliance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/vetanhr/payroll-backend-go/internal/domain/compliance"
	"github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	"github.com/vetanhr/payroll-backend-go/internal/domain/user"
)

type ComplianceServiceImpl struct {
	tx             payroll.Transactor
	complianceRepo compliance.ComplianceRepository
	payrollRepo    payroll.PayrollRepository
}

func NewComplianceService(
	tx payroll.Transactor,
	complianceRepo compliance.ComplianceRepository,
	payrollRepo payroll.PayrollRepository,
) compliance.ComplianceService {
	return &ComplianceServiceImpl{
		tx:             tx,
		complianceRepo: complianceRepo,
		payrollRepo:    payrollRepo,
	}
}

func callerRole(ctx context.Context) (user.Role, error) {
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

// GenerateForPeriod totals the deduction columns of the period's processed
// payroll run into the four statutory returns, upserting them in one
// transaction. Regenerating replaces earlier drafts; filed returns are kept.
func (s *ComplianceServiceImpl) GenerateForPeriod(ctx context.Context, req compliance.GenerateReturnsRequest) ([]compliance.ReturnResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role, err := callerRole(ctx)
	if err != nil {
		return nil, err
	}
	if !role.CanProcessPayroll() {
		return nil, user.ErrHRPrivilegeRequired
	}

	run, err := s.payrollRepo.GetRunByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		if errors.Is(err, payroll.ErrRunNotFound) {
			return nil, compliance.ErrRunNotProcessed
		}
		return nil, err
	}
	if run.Status != payroll.RunStatusProcessed {
		return nil, compliance.ErrRunNotProcessed
	}

	calcs, err := s.payrollRepo.GetCalculationsByRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	totals := map[compliance.ReturnType]decimal.Decimal{
		compliance.ReturnTypePFECR:     decimal.Zero,
		compliance.ReturnTypeESIReturn: decimal.Zero,
		compliance.ReturnTypePTReturn:  decimal.Zero,
		compliance.ReturnTypeTDS24Q:    decimal.Zero,
	}
	counts := map[compliance.ReturnType]int{}

	for _, c := range calcs {
		for returnType, amount := range map[compliance.ReturnType]decimal.Decimal{
			compliance.ReturnTypePFECR:     c.PFEmployee,
			compliance.ReturnTypeESIReturn: c.ESIEmployee,
			compliance.ReturnTypePTReturn:  c.ProfessionalTax,
			compliance.ReturnTypeTDS24Q:    c.TDS,
		} {
			if amount.IsPositive() {
				totals[returnType] = totals[returnType].Add(amount)
				counts[returnType]++
			}
		}
	}

	now := time.Now()
	var stored []compliance.StatutoryReturn
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, returnType := range []compliance.ReturnType{
			compliance.ReturnTypePFECR,
			compliance.ReturnTypeESIReturn,
			compliance.ReturnTypePTReturn,
			compliance.ReturnTypeTDS24Q,
		} {
			r, err := s.complianceRepo.UpsertReturn(ctx, compliance.StatutoryReturn{
				Type:          returnType,
				PeriodMonth:   req.Month,
				PeriodYear:    req.Year,
				TotalAmount:   totals[returnType],
				EmployeeCount: counts[returnType],
				Status:        compliance.ReturnStatusDraft,
				GeneratedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert %s return: %w", returnType, err)
			}
			stored = append(stored, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]compliance.ReturnResponse, 0, len(stored))
	for _, r := range stored {
		result = append(result, mapReturnResponse(r))
	}
	return result, nil
}

func (s *ComplianceServiceImpl) List(ctx context.Context, filter compliance.ReturnFilter) ([]compliance.ReturnResponse, error) {
	returns, err := s.complianceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]compliance.ReturnResponse, 0, len(returns))
	for _, r := range returns {
		result = append(result, mapReturnResponse(r))
	}
	return result, nil
}

func (s *ComplianceServiceImpl) File(ctx context.Context, id string) (compliance.ReturnResponse, error) {
	role, err := callerRole(ctx)
	if err != nil {
		return compliance.ReturnResponse{}, err
	}
	if !role.CanProcessPayroll() {
		return compliance.ReturnResponse{}, user.ErrHRPrivilegeRequired
	}

	r, err := s.complianceRepo.GetByID(ctx, id)
	if err != nil {
		return compliance.ReturnResponse{}, err
	}
	if r.Status == compliance.ReturnStatusFiled {
		return compliance.ReturnResponse{}, compliance.ErrReturnAlreadyFiled
	}

	filed, err := s.complianceRepo.MarkFiled(ctx, id)
	if err != nil {
		return compliance.ReturnResponse{}, err
	}
	return mapReturnResponse(filed), nil
}

func mapReturnResponse(r compliance.StatutoryReturn) compliance.ReturnResponse {
	var filedAt *string
	if r.FiledAt != nil {
		str := r.FiledAt.Format(time.RFC3339)
		filedAt = &str
	}
	return compliance.ReturnResponse{
		ID:            r.ID,
		Type:          string(r.Type),
		PeriodMonth:   r.PeriodMonth,
		PeriodYear:    r.PeriodYear,
		TotalAmount:   r.TotalAmount,
		EmployeeCount: r.EmployeeCount,
		Status:        string(r.Status),
		GeneratedAt:   r.GeneratedAt.Format(time.RFC3339),
		FiledAt:       filedAt,
	}
}
