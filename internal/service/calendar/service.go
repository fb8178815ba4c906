package calendar

import (
	"time"

	"github.com/vetanhr/payroll-backend-go/internal/domain/calendar"
)

type CalendarServiceImpl struct {
	holidays calendar.HolidayProvider
}

func NewCalendarService(holidays calendar.HolidayProvider) calendar.CalendarService {
	return &CalendarServiceImpl{holidays: holidays}
}

// MonthDetails classifies every day of (year, monthIndex). Weekends take
// absolute precedence: a holiday falling on Saturday or Sunday is counted as
// a weekend day and silently dropped from the holiday list. On weekdays the
// fixed national table is consulted before the caller's custom list.
func (s *CalendarServiceImpl) MonthDetails(year, monthIndex int, custom []calendar.CustomHoliday) calendar.CalendarMonth {
	month := time.Month(monthIndex + 1)

	// Day 0 of the following month is the last day of this one.
	totalDays := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	fixed := make(map[int]string)
	for _, h := range s.holidays.FixedHolidays(year) {
		if h.Month == month {
			fixed[h.Day] = h.Name
		}
	}

	customByDay := make(map[int]string)
	for _, h := range custom {
		if _, exists := customByDay[h.Day]; !exists {
			customByDay[h.Day] = h.Name
		}
	}

	result := calendar.CalendarMonth{
		Year:       year,
		MonthIndex: monthIndex,
		TotalDays:  totalDays,
		Holidays:   []calendar.Holiday{},
	}

	for day := 1; day <= totalDays; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			result.WeekendDays++
			continue
		}

		if name, ok := fixed[day]; ok {
			result.Holidays = append(result.Holidays, calendar.Holiday{
				Date: date,
				Day:  day,
				Name: name,
				Type: calendar.HolidayTypePredefined,
			})
			continue
		}

		if name, ok := customByDay[day]; ok {
			result.Holidays = append(result.Holidays, calendar.Holiday{
				Date: date,
				Day:  day,
				Name: name,
				Type: calendar.HolidayTypeCustom,
			})
			continue
		}

		result.WorkingDays++
	}

	return result
}
