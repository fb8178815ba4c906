package calendar

import "context"

// CalendarService computes month classifications. Implementations are pure
// and safe for concurrent use.
type CalendarService interface {
	MonthDetails(year, monthIndex int, custom []CustomHoliday) CalendarMonth
}

// HolidayService manages persisted organization holidays and serves month
// views with them folded in as custom holidays.
type HolidayService interface {
	Create(ctx context.Context, req CreateOrgHolidayRequest) (OrgHolidayResponse, error)
	ListByMonth(ctx context.Context, year, month int) ([]OrgHolidayResponse, error)
	Delete(ctx context.Context, id string) error
	// MonthView classifies (year, month 1-12) with the stored organization
	// holidays applied.
	MonthView(ctx context.Context, year, month int) (CalendarMonthResponse, error)
}
