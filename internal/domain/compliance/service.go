package compliance

import "context"

type ComplianceService interface {
	// GenerateForPeriod derives the four statutory returns from the period's
	// processed payroll run, atomically replacing earlier drafts.
	GenerateForPeriod(ctx context.Context, req GenerateReturnsRequest) ([]ReturnResponse, error)
	List(ctx context.Context, filter ReturnFilter) ([]ReturnResponse, error)
	File(ctx context.Context, id string) (ReturnResponse, error)
}
