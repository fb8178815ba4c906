package compliance

import (
	"github.com/shopspring/decimal"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/validator"
)

type GenerateReturnsRequest struct {
	Month int `json:"month"` // 1-12
	Year  int `json:"year"`
}

func (r *GenerateReturnsRequest) Validate() error {
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

type ReturnResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	PeriodMonth   int             `json:"period_month"`
	PeriodYear    int             `json:"period_year"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	EmployeeCount int             `json:"employee_count"`
	Status        string          `json:"status"`
	GeneratedAt   string          `json:"generated_at"`
	FiledAt       *string         `json:"filed_at,omitempty"`
}

type ReturnFilter struct {
	Month *int
	Year  *int
	Type  *string
}
