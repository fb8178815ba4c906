package calendar

import (
	"github.com/vetanhr/payroll-backend-go/internal/pkg/validator"
)

type CalendarMonthResponse struct {
	Year        int               `json:"year"`
	Month       int               `json:"month"` // 1-12
	TotalDays   int               `json:"total_days"`
	WorkingDays int               `json:"working_days"`
	WeekendDays int               `json:"weekend_days"`
	Holidays    []HolidayResponse `json:"holidays"`
}

type HolidayResponse struct {
	Date string `json:"date"`
	Day  int    `json:"day"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func NewCalendarMonthResponse(m CalendarMonth) CalendarMonthResponse {
	holidays := make([]HolidayResponse, 0, len(m.Holidays))
	for _, h := range m.Holidays {
		holidays = append(holidays, HolidayResponse{
			Date: h.Date.Format("2006-01-02"),
			Day:  h.Day,
			Name: h.Name,
			Type: string(h.Type),
		})
	}
	return CalendarMonthResponse{
		Year:        m.Year,
		Month:       m.MonthIndex + 1,
		TotalDays:   m.TotalDays,
		WorkingDays: m.WorkingDays,
		WeekendDays: m.WeekendDays,
		Holidays:    holidays,
	}
}

type CreateOrgHolidayRequest struct {
	Year  int    `json:"year"`
	Month int    `json:"month"` // 1-12
	Day   int    `json:"day"`
	Name  string `json:"name"`
}

func (r *CreateOrgHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Day < 1 || r.Day > 31 {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "must be between 1 and 31"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrgHolidayResponse struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Name  string `json:"name"`
}
