package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetanhr/payroll-backend-go/internal/domain/compliance"
	"github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	"github.com/vetanhr/payroll-backend-go/internal/domain/user"
)

type fakeComplianceRepo struct {
	returns map[string]compliance.StatutoryReturn
}

func (f *fakeComplianceRepo) UpsertReturn(ctx context.Context, r compliance.StatutoryReturn) (compliance.StatutoryReturn, error) {
	for id, existing := range f.returns {
		if existing.Type == r.Type && existing.PeriodMonth == r.PeriodMonth && existing.PeriodYear == r.PeriodYear {
			if existing.Status == compliance.ReturnStatusFiled {
				return existing, nil
			}
			r.ID = id
			f.returns[id] = r
			return r, nil
		}
	}
	r.ID = uuid.NewString()
	f.returns[r.ID] = r
	return r, nil
}

func (f *fakeComplianceRepo) GetByID(ctx context.Context, id string) (compliance.StatutoryReturn, error) {
	r, ok := f.returns[id]
	if !ok {
		return compliance.StatutoryReturn{}, compliance.ErrReturnNotFound
	}
	return r, nil
}

func (f *fakeComplianceRepo) List(ctx context.Context, filter compliance.ReturnFilter) ([]compliance.StatutoryReturn, error) {
	var result []compliance.StatutoryReturn
	for _, r := range f.returns {
		if filter.Month != nil && r.PeriodMonth != *filter.Month {
			continue
		}
		if filter.Year != nil && r.PeriodYear != *filter.Year {
			continue
		}
		if filter.Type != nil && string(r.Type) != *filter.Type {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeComplianceRepo) MarkFiled(ctx context.Context, id string) (compliance.StatutoryReturn, error) {
	r, ok := f.returns[id]
	if !ok {
		return compliance.StatutoryReturn{}, compliance.ErrReturnNotFound
	}
	now := time.Now()
	r.Status = compliance.ReturnStatusFiled
	r.FiledAt = &now
	f.returns[id] = r
	return r, nil
}

type fakePayrollRepo struct {
	run   payroll.PayrollRun
	calcs []payroll.PayrollCalculation
}

func (f *fakePayrollRepo) GetRunByPeriod(ctx context.Context, month, year int) (payroll.PayrollRun, error) {
	if f.run.ID == "" || f.run.PeriodMonth != month || f.run.PeriodYear != year {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	return f.run, nil
}
func (f *fakePayrollRepo) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	return f.run, nil
}
func (f *fakePayrollRepo) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	return run, nil
}
func (f *fakePayrollRepo) UpdateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	return run, nil
}
func (f *fakePayrollRepo) ListRuns(ctx context.Context, year *int) ([]payroll.PayrollRun, error) {
	return nil, nil
}
func (f *fakePayrollRepo) DeleteCalculationsByRun(ctx context.Context, runID string) error {
	return nil
}
func (f *fakePayrollRepo) CreateCalculations(ctx context.Context, calcs []payroll.PayrollCalculation) error {
	return nil
}
func (f *fakePayrollRepo) GetCalculationsByRun(ctx context.Context, runID string) ([]payroll.PayrollCalculation, error) {
	return f.calcs, nil
}

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func ctxWithRole(t *testing.T, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{"role": string(role), "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func processedRunFixture() *fakePayrollRepo {
	now := time.Now()
	return &fakePayrollRepo{
		run: payroll.PayrollRun{
			ID:          "run-1",
			PeriodMonth: 8,
			PeriodYear:  2025,
			Status:      payroll.RunStatusProcessed,
			ProcessedAt: &now,
		},
		calcs: []payroll.PayrollCalculation{
			{
				RunID: "run-1", EmployeeID: "emp-1",
				PFEmployee: d("1800"), ESIEmployee: d("150"), ProfessionalTax: d("200"), TDS: d("0"),
			},
			{
				RunID: "run-1", EmployeeID: "emp-2",
				PFEmployee: d("1800"), ESIEmployee: d("0"), ProfessionalTax: d("200"), TDS: d("833.3"),
			},
		},
	}
}

func newTestService(payrollRepo *fakePayrollRepo) (compliance.ComplianceService, *fakeComplianceRepo) {
	repo := &fakeComplianceRepo{returns: make(map[string]compliance.StatutoryReturn)}
	return NewComplianceService(passthroughTx{}, repo, payrollRepo), repo
}

func TestGenerateForPeriod_TotalsDeductionColumns(t *testing.T) {
	svc, _ := newTestService(processedRunFixture())

	returns, err := svc.GenerateForPeriod(ctxWithRole(t, user.RoleHR), compliance.GenerateReturnsRequest{Month: 8, Year: 2025})
	require.NoError(t, err)
	require.Len(t, returns, 4)

	byType := map[string]compliance.ReturnResponse{}
	for _, r := range returns {
		byType[r.Type] = r
	}

	assert.True(t, byType["pf_ecr"].TotalAmount.Equal(d("3600")))
	assert.Equal(t, 2, byType["pf_ecr"].EmployeeCount)

	assert.True(t, byType["esi_return"].TotalAmount.Equal(d("150")))
	assert.Equal(t, 1, byType["esi_return"].EmployeeCount)

	assert.True(t, byType["pt_return"].TotalAmount.Equal(d("400")))
	assert.Equal(t, 2, byType["pt_return"].EmployeeCount)

	assert.True(t, byType["tds_24q"].TotalAmount.Equal(d("833.3")))
	assert.Equal(t, 1, byType["tds_24q"].EmployeeCount)

	for _, r := range returns {
		assert.Equal(t, "draft", r.Status)
	}
}

func TestGenerateForPeriod_RequiresProcessedRun(t *testing.T) {
	pending := processedRunFixture()
	pending.run.Status = payroll.RunStatusPending
	svc, _ := newTestService(pending)

	_, err := svc.GenerateForPeriod(ctxWithRole(t, user.RoleHR), compliance.GenerateReturnsRequest{Month: 8, Year: 2025})
	assert.ErrorIs(t, err, compliance.ErrRunNotProcessed)
}

func TestGenerateForPeriod_NoRunForPeriod(t *testing.T) {
	svc, _ := newTestService(&fakePayrollRepo{})

	_, err := svc.GenerateForPeriod(ctxWithRole(t, user.RoleHR), compliance.GenerateReturnsRequest{Month: 1, Year: 2025})
	assert.ErrorIs(t, err, compliance.ErrRunNotProcessed)
}

func TestGenerateForPeriod_RejectsEmployeeRole(t *testing.T) {
	svc, repo := newTestService(processedRunFixture())

	_, err := svc.GenerateForPeriod(ctxWithRole(t, user.RoleEmployee), compliance.GenerateReturnsRequest{Month: 8, Year: 2025})
	assert.ErrorIs(t, err, user.ErrHRPrivilegeRequired)
	assert.Empty(t, repo.returns)
}

func TestGenerateForPeriod_RegenerationReplacesDrafts(t *testing.T) {
	payrollRepo := processedRunFixture()
	svc, repo := newTestService(payrollRepo)
	ctx := ctxWithRole(t, user.RoleHR)

	_, err := svc.GenerateForPeriod(ctx, compliance.GenerateReturnsRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	// rerun after a correction halves one employee's TDS
	payrollRepo.calcs[1].TDS = d("416.65")

	returns, err := svc.GenerateForPeriod(ctx, compliance.GenerateReturnsRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	assert.Len(t, repo.returns, 4, "regeneration must not create duplicate rows")
	for _, r := range returns {
		if r.Type == "tds_24q" {
			assert.True(t, r.TotalAmount.Equal(d("416.65")))
		}
	}
}

func TestFile_MarksDraftFiled(t *testing.T) {
	svc, _ := newTestService(processedRunFixture())
	ctx := ctxWithRole(t, user.RoleAdmin)

	returns, err := svc.GenerateForPeriod(ctx, compliance.GenerateReturnsRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	filed, err := svc.File(ctx, returns[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "filed", filed.Status)
	require.NotNil(t, filed.FiledAt)

	// filing twice is rejected
	_, err = svc.File(ctx, returns[0].ID)
	assert.ErrorIs(t, err, compliance.ErrReturnAlreadyFiled)
}

func TestList_FiltersByType(t *testing.T) {
	svc, _ := newTestService(processedRunFixture())
	ctx := ctxWithRole(t, user.RoleHR)

	_, err := svc.GenerateForPeriod(ctx, compliance.GenerateReturnsRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	pfType := "pf_ecr"
	result, err := svc.List(context.Background(), compliance.ReturnFilter{Type: &pfType})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "pf_ecr", result[0].Type)
}
