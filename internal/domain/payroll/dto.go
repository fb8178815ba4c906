package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/validator"
)

type ProcessRunRequest struct {
	Month int `json:"month"` // 1-12
	Year  int `json:"year"`
}

func (r *ProcessRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunResponse struct {
	ID                 string                `json:"id"`
	PeriodMonth        int                   `json:"period_month"`
	PeriodYear         int                   `json:"period_year"`
	Status             string                `json:"status"`
	ProcessedAt        *string               `json:"processed_at,omitempty"`
	TotalEmployees     int                   `json:"total_employees"`
	ProcessedEmployees int                   `json:"processed_employees"`
	TotalGrossSalary   decimal.Decimal       `json:"total_gross_salary"`
	TotalDeductions    decimal.Decimal       `json:"total_deductions"`
	TotalNetSalary     decimal.Decimal       `json:"total_net_salary"`
	Calculations       []CalculationResponse `json:"calculations,omitempty"`
}

type CalculationResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeCode       *string         `json:"employee_code,omitempty"`
	EmployeeName       *string         `json:"employee_name,omitempty"`
	GrossEarnings      decimal.Decimal `json:"gross_earnings"`
	PFEmployee         decimal.Decimal `json:"pf_employee"`
	ESIEmployee        decimal.Decimal `json:"esi_employee"`
	ProfessionalTax    decimal.Decimal `json:"professional_tax"`
	TDS                decimal.Decimal `json:"tds"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetPay             decimal.Decimal `json:"net_pay"`
	IsValid            bool            `json:"is_valid"`
	ValidationErrors   []string        `json:"validation_errors"`
	ValidationWarnings []string        `json:"validation_warnings"`
}
