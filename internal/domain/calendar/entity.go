package calendar

import "time"

// CalendarMonth is the computed shape of one month: every day is classified
// as exactly one of working, weekend, or holiday.
type CalendarMonth struct {
	Year        int
	MonthIndex  int // zero-based, 0 = January
	TotalDays   int
	WorkingDays int
	WeekendDays int
	Holidays    []Holiday
}

type HolidayType string

const (
	HolidayTypePredefined HolidayType = "predefined"
	HolidayTypeCustom     HolidayType = "custom"
)

// Holiday is a classified non-working weekday within a month.
type Holiday struct {
	Date time.Time
	Day  int
	Name string
	Type HolidayType
}

// CustomHoliday is a caller-supplied organization holiday for one month,
// identified by day-of-month only.
type CustomHoliday struct {
	Day  int
	Name string
}

// OrgHoliday is a persisted organization-specific holiday.
type OrgHoliday struct {
	ID        string
	Year      int
	Month     int // 1-12
	Day       int
	Name      string
	CreatedAt time.Time
}
