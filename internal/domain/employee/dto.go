package employee

import (
	"github.com/shopspring/decimal"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode  string          `json:"employee_code"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	Designation   *string         `json:"designation,omitempty"`
	JoiningDate   string          `json:"joining_date"`
	Salary        decimal.Decimal `json:"salary"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	HRA           decimal.Decimal `json:"hra"`
	Allowances    decimal.Decimal `json:"allowances"`
	PFOptIn       bool            `json:"pf_opt_in"`
	ESIApplicable bool            `json:"esi_applicable"`
	BankName      *string         `json:"bank_name,omitempty"`
	BankAccount   *string         `json:"bank_account,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match EMP-0000"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
	}
	errs = append(errs, validateCompensation(r.Salary, r.BasicSalary, r.HRA, r.Allowances)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string
	FullName      *string          `json:"full_name,omitempty"`
	Designation   *string          `json:"designation,omitempty"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
	BasicSalary   *decimal.Decimal `json:"basic_salary,omitempty"`
	HRA           *decimal.Decimal `json:"hra,omitempty"`
	Allowances    *decimal.Decimal `json:"allowances,omitempty"`
	PFOptIn       *bool            `json:"pf_opt_in,omitempty"`
	ESIApplicable *bool            `json:"esi_applicable,omitempty"`
	BankName      *string          `json:"bank_name,omitempty"`
	BankAccount   *string          `json:"bank_account,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, amount := range map[string]*decimal.Decimal{
		"salary":       r.Salary,
		"basic_salary": r.BasicSalary,
		"hra":          r.HRA,
		"allowances":   r.Allowances,
	} {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCompensation(salary, basic, hra, allowances decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if basic.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if hra.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hra", Message: "must be non-negative"})
	}
	if allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowances", Message: "must be non-negative"})
	}
	if basic.GreaterThan(salary) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "cannot exceed gross salary"})
	}
	return errs
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	EmployeeCode  string          `json:"employee_code"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	Designation   *string         `json:"designation,omitempty"`
	JoiningDate   string          `json:"joining_date"`
	Status        string          `json:"status"`
	Salary        decimal.Decimal `json:"salary"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	HRA           decimal.Decimal `json:"hra"`
	Allowances    decimal.Decimal `json:"allowances"`
	PFOptIn       bool            `json:"pf_opt_in"`
	ESIApplicable bool            `json:"esi_applicable"`
	BankName      *string         `json:"bank_name,omitempty"`
	BankAccount   *string         `json:"bank_account,omitempty"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

type EmployeeFilter struct {
	Status *string
	Search *string
	Page   int
	Limit  int
}
