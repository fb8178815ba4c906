package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetanhr/payroll-backend-go/internal/domain/employee"
	"github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	"github.com/vetanhr/payroll-backend-go/internal/domain/user"
)

// fakeStore keeps runs and calculations in memory so the run protocol can be
// exercised without a database.
type fakeStore struct {
	active          []employee.Employee
	runs            map[string]payroll.PayrollRun
	calcs           map[string][]payroll.PayrollCalculation
	failCreateCalcs bool
}

func newFakeStore(active ...employee.Employee) *fakeStore {
	return &fakeStore{
		active: active,
		runs:   make(map[string]payroll.PayrollRun),
		calcs:  make(map[string][]payroll.PayrollCalculation),
	}
}

func (f *fakeStore) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

func (f *fakeStore) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeStore) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeStore) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.active, int64(len(f.active)), nil
}
func (f *fakeStore) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeStore) SetStatus(ctx context.Context, id string, status employee.Status) error {
	return nil
}
func (f *fakeStore) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeStore) GetRunByPeriod(ctx context.Context, month, year int) (payroll.PayrollRun, error) {
	for _, run := range f.runs {
		if run.PeriodMonth == month && run.PeriodYear == year {
			return run, nil
		}
	}
	return payroll.PayrollRun{}, payroll.ErrRunNotFound
}

func (f *fakeStore) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	run, ok := f.runs[id]
	if !ok {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	return run, nil
}

func (f *fakeStore) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	run.ID = uuid.NewString()
	run.CreatedAt = time.Now()
	f.runs[run.ID] = run
	return run, nil
}

func (f *fakeStore) UpdateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	if _, ok := f.runs[run.ID]; !ok {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	f.runs[run.ID] = run
	return run, nil
}

func (f *fakeStore) ListRuns(ctx context.Context, year *int) ([]payroll.PayrollRun, error) {
	var result []payroll.PayrollRun
	for _, run := range f.runs {
		if year == nil || run.PeriodYear == *year {
			result = append(result, run)
		}
	}
	return result, nil
}

func (f *fakeStore) DeleteCalculationsByRun(ctx context.Context, runID string) error {
	delete(f.calcs, runID)
	return nil
}

func (f *fakeStore) CreateCalculations(ctx context.Context, calcs []payroll.PayrollCalculation) error {
	if f.failCreateCalcs {
		return errors.New("insert failed")
	}
	for _, c := range calcs {
		c.ID = uuid.NewString()
		f.calcs[c.RunID] = append(f.calcs[c.RunID], c)
	}
	return nil
}

func (f *fakeStore) GetCalculationsByRun(ctx context.Context, runID string) ([]payroll.PayrollCalculation, error) {
	return append([]payroll.PayrollCalculation(nil), f.calcs[runID]...), nil
}

// fakeTx mimics transactional semantics by snapshotting the store and
// restoring it when fn fails.
type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	runsSnap := make(map[string]payroll.PayrollRun, len(t.store.runs))
	for k, v := range t.store.runs {
		runsSnap[k] = v
	}
	calcsSnap := make(map[string][]payroll.PayrollCalculation, len(t.store.calcs))
	for k, v := range t.store.calcs {
		calcsSnap[k] = append([]payroll.PayrollCalculation(nil), v...)
	}

	if err := fn(ctx); err != nil {
		t.store.runs = runsSnap
		t.store.calcs = calcsSnap
		return err
	}
	return nil
}

func ctxWithRole(t *testing.T, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id": "u-1",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:            "emp-1",
			EmployeeCode:  "EMP-0001",
			Status:        employee.StatusActive,
			Salary:        d("20000"),
			BasicSalary:   d("15000"),
			PFOptIn:       true,
			ESIApplicable: true,
		},
		{
			ID:            "emp-2",
			EmployeeCode:  "EMP-0002",
			Status:        employee.StatusActive,
			Salary:        d("50000"),
			BasicSalary:   d("20000"),
			PFOptIn:       true,
			ESIApplicable: true,
		},
	}
}

func newTestService(store *fakeStore) payroll.PayrollService {
	return NewPayrollService(&fakeTx{store: store}, store, store, payroll.NewRuleSet())
}

func TestProcessRun_RejectsNonHRRole(t *testing.T) {
	store := newFakeStore(testEmployees()...)
	svc := newTestService(store)

	_, err := svc.ProcessRun(ctxWithRole(t, user.RoleEmployee), payroll.ProcessRunRequest{Month: 8, Year: 2025})

	assert.ErrorIs(t, err, user.ErrHRPrivilegeRequired)
	assert.Empty(t, store.runs, "rejected request must not touch persistence")
}

func TestProcessRun_RejectsMissingClaims(t *testing.T) {
	store := newFakeStore(testEmployees()...)
	svc := newTestService(store)

	_, err := svc.ProcessRun(context.Background(), payroll.ProcessRunRequest{Month: 8, Year: 2025})

	assert.Error(t, err)
	assert.Empty(t, store.runs)
}

func TestProcessRun_RejectsInvalidPeriod(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.ProcessRun(ctxWithRole(t, user.RoleHR), payroll.ProcessRunRequest{Month: 13, Year: 2025})
	assert.Error(t, err)
}

func TestProcessRun_ComputesRunAggregates(t *testing.T) {
	store := newFakeStore(testEmployees()...)
	svc := newTestService(store)

	run, err := svc.ProcessRun(ctxWithRole(t, user.RoleHR), payroll.ProcessRunRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, string(payroll.RunStatusProcessed), run.Status)
	assert.NotNil(t, run.ProcessedAt)
	assert.Equal(t, 2, run.TotalEmployees)
	assert.Equal(t, 2, run.ProcessedEmployees)
	assert.True(t, run.TotalGrossSalary.Equal(d("70000")), "gross = %s", run.TotalGrossSalary)
	assert.True(t, run.TotalDeductions.Equal(d("4983.3")), "deductions = %s", run.TotalDeductions)
	assert.True(t, run.TotalNetSalary.Equal(d("65016.7")), "net = %s", run.TotalNetSalary)

	require.Len(t, run.Calculations, 2)
	for _, c := range run.Calculations {
		assert.True(t, c.IsValid)
		assert.Empty(t, c.ValidationErrors)
		sum := c.PFEmployee.Add(c.ESIEmployee).Add(c.ProfessionalTax).Add(c.TDS).Add(c.OtherDeductions)
		assert.True(t, c.TotalDeductions.Equal(sum))
		assert.True(t, c.NetPay.Equal(c.GrossEarnings.Sub(c.TotalDeductions)))
	}
}

func TestProcessRun_IdempotentForUnchangedData(t *testing.T) {
	store := newFakeStore(testEmployees()...)
	svc := newTestService(store)
	ctx := ctxWithRole(t, user.RoleAdmin)

	first, err := svc.ProcessRun(ctx, payroll.ProcessRunRequest{Month: 8, Year: 2025})
	require.NoError(t, err)
	second, err := svc.ProcessRun(ctx, payroll.ProcessRunRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	// same run row updated in place, children replaced not appended
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.runs, 1)
	assert.Len(t, store.calcs[second.ID], 2)

	assert.True(t, first.TotalGrossSalary.Equal(second.TotalGrossSalary))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.True(t, first.TotalNetSalary.Equal(second.TotalNetSalary))
}

func TestProcessRun_RecomputesAfterEmployeeChange(t *testing.T) {
	store := newFakeStore(testEmployees()...)
	svc := newTestService(store)
	ctx := ctxWithRole(t, user.RoleHR)

	_, err := svc.ProcessRun(ctx, payroll.ProcessRunRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	// second employee leaves before the rerun
	store.active = store.active[:1]

	rerun, err := svc.ProcessRun(ctx, payroll.ProcessRunRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 1, rerun.TotalEmployees)
	assert.True(t, rerun.TotalGrossSalary.Equal(d("20000")))
	assert.True(t, rerun.TotalDeductions.Equal(d("2150")))
	assert.Len(t, store.calcs[rerun.ID], 1)
}

func TestProcessRun_FailureRollsBackPreviousState(t *testing.T) {
	store := newFakeStore(testEmployees()...)
	svc := newTestService(store)
	ctx := ctxWithRole(t, user.RoleHR)

	first, err := svc.ProcessRun(ctx, payroll.ProcessRunRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	store.failCreateCalcs = true
	_, err = svc.ProcessRun(ctx, payroll.ProcessRunRequest{Month: 8, Year: 2025})
	require.Error(t, err)

	// the previously committed run and its calculations are untouched
	kept, ok := store.runs[first.ID]
	require.True(t, ok)
	assert.Equal(t, payroll.RunStatusProcessed, kept.Status)
	assert.True(t, kept.TotalGrossSalary.Equal(d("70000")))
	assert.Len(t, store.calcs[first.ID], 2)
}

func TestProcessRun_NoActiveEmployees(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	run, err := svc.ProcessRun(ctxWithRole(t, user.RoleHR), payroll.ProcessRunRequest{Month: 1, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, string(payroll.RunStatusProcessed), run.Status)
	assert.Equal(t, 0, run.TotalEmployees)
	assert.True(t, run.TotalGrossSalary.IsZero())
	assert.Empty(t, run.Calculations)
}

func TestGetRun_ReturnsCalculations(t *testing.T) {
	store := newFakeStore(testEmployees()...)
	svc := newTestService(store)

	created, err := svc.ProcessRun(ctxWithRole(t, user.RoleHR), payroll.ProcessRunRequest{Month: 8, Year: 2025})
	require.NoError(t, err)

	fetched, err := svc.GetRun(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Len(t, fetched.Calculations, 2)
}
