package payroll

import "context"

// Transactor scopes a function to one atomic database transaction. The run
// protocol's delete-insert-update sequence always executes inside it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type PayrollRepository interface {
	// Runs
	GetRunByPeriod(ctx context.Context, month, year int) (PayrollRun, error)
	GetRunByID(ctx context.Context, id string) (PayrollRun, error)
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	UpdateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	ListRuns(ctx context.Context, year *int) ([]PayrollRun, error)

	// Calculations (owned by their run, replaced wholesale on reprocess)
	DeleteCalculationsByRun(ctx context.Context, runID string) error
	CreateCalculations(ctx context.Context, calcs []PayrollCalculation) error
	GetCalculationsByRun(ctx context.Context, runID string) ([]PayrollCalculation, error)
}
