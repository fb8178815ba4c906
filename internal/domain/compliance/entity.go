package compliance

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnType enumerates the statutory filings derived from a processed run.
type ReturnType string

const (
	ReturnTypePFECR     ReturnType = "pf_ecr"
	ReturnTypeESIReturn ReturnType = "esi_return"
	ReturnTypePTReturn  ReturnType = "pt_return"
	ReturnTypeTDS24Q    ReturnType = "tds_24q"
)

// ReturnStatus enum
type ReturnStatus string

const (
	ReturnStatusDraft ReturnStatus = "draft"
	ReturnStatusFiled ReturnStatus = "filed"
)

// StatutoryReturn is one compliance filing for a period, totalling one
// deduction column across the period's payroll calculations.
type StatutoryReturn struct {
	ID            string
	Type          ReturnType
	PeriodMonth   int
	PeriodYear    int
	TotalAmount   decimal.Decimal
	EmployeeCount int
	Status        ReturnStatus
	GeneratedAt   time.Time
	FiledAt       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
