package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	EmployeeCode  string
	FullName      string
	Email         string
	Designation   *string
	JoiningDate   time.Time
	Status        Status
	Salary        decimal.Decimal // monthly gross
	BasicSalary   decimal.Decimal
	HRA           decimal.Decimal
	Allowances    decimal.Decimal
	PFOptIn       bool
	ESIApplicable bool
	BankName      *string
	BankAccount   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
