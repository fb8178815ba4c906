package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus enum
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusProcessed RunStatus = "processed"
)

// PayrollRun is one payroll execution for a (month, year) period. At most one
// run exists per period; reprocessing updates it in place.
type PayrollRun struct {
	ID                 string
	PeriodMonth        int // 1-12
	PeriodYear         int
	Status             RunStatus
	ProcessedAt        *time.Time
	TotalEmployees     int
	ProcessedEmployees int
	TotalGrossSalary   decimal.Decimal
	TotalDeductions    decimal.Decimal
	TotalNetSalary     decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PayrollCalculation is the per-employee breakdown owned by a run. The whole
// set is deleted and recreated whenever the run is reprocessed.
type PayrollCalculation struct {
	ID                 string
	RunID              string
	EmployeeID         string
	GrossEarnings      decimal.Decimal
	PFEmployee         decimal.Decimal
	ESIEmployee        decimal.Decimal
	ProfessionalTax    decimal.Decimal
	TDS                decimal.Decimal
	OtherDeductions    decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetPay             decimal.Decimal
	IsValid            bool
	ValidationErrors   []string
	ValidationWarnings []string
	CreatedAt          time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}
