package payroll

import "context"

type PayrollService interface {
	// ProcessRun executes the run protocol for a period: authorization check,
	// then lookup-or-create, full replacement of calculations, and aggregate
	// update inside one transaction.
	ProcessRun(ctx context.Context, req ProcessRunRequest) (RunResponse, error)
	GetRun(ctx context.Context, id string) (RunResponse, error)
	ListRuns(ctx context.Context, year *int) ([]RunResponse, error)
}
