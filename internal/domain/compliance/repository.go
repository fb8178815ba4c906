package compliance

import "context"

type ComplianceRepository interface {
	// UpsertReturn replaces the return for (type, month, year) keeping draft
	// status unless it was already filed.
	UpsertReturn(ctx context.Context, r StatutoryReturn) (StatutoryReturn, error)
	GetByID(ctx context.Context, id string) (StatutoryReturn, error)
	List(ctx context.Context, filter ReturnFilter) ([]StatutoryReturn, error)
	MarkFiled(ctx context.Context, id string) (StatutoryReturn, error)
}
