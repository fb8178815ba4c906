package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetanhr/payroll-backend-go/internal/domain/calendar"
)

func newService() calendar.CalendarService {
	return NewCalendarService(calendar.NewNationalHolidayProvider())
}

func TestMonthDetails_August2025(t *testing.T) {
	// August 2025: 31 days, 10 weekend days, Independence Day on Friday the 15th.
	m := newService().MonthDetails(2025, 7, nil)

	assert.Equal(t, 31, m.TotalDays)
	assert.Equal(t, 10, m.WeekendDays)
	assert.Equal(t, 20, m.WorkingDays)

	require.Len(t, m.Holidays, 1)
	h := m.Holidays[0]
	assert.Equal(t, "Independence Day", h.Name)
	assert.Equal(t, 15, h.Day)
	assert.Equal(t, calendar.HolidayTypePredefined, h.Type)
	assert.Equal(t, time.Friday, h.Date.Weekday())
}

func TestMonthDetails_HolidayReducesWorkingDays(t *testing.T) {
	svc := newService()

	// June 2025 has no national holidays; August 2025 has one on a weekday.
	june := svc.MonthDetails(2025, 5, nil)
	august := svc.MonthDetails(2025, 7, nil)

	assert.Empty(t, june.Holidays)
	// 21 working days in June vs 20 in August despite one more calendar day
	assert.Equal(t, 21, june.WorkingDays)
	assert.Equal(t, 20, august.WorkingDays)
}

func TestMonthDetails_WeekendPrecedenceOverHoliday(t *testing.T) {
	// Republic Day 2025 (Jan 26) falls on a Sunday: it is counted as a weekend
	// day and dropped from the holiday list, never double-counted.
	m := newService().MonthDetails(2025, 0, nil)

	for _, h := range m.Holidays {
		assert.NotEqual(t, 26, h.Day)
	}
	require.Len(t, m.Holidays, 1) // only New Year's Day (Wednesday) survives
	assert.Equal(t, "New Year's Day", m.Holidays[0].Name)
	assert.Equal(t, 8, m.WeekendDays)
	assert.Equal(t, 22, m.WorkingDays)
}

func TestMonthDetails_CustomHolidays(t *testing.T) {
	// August 14 2025 is a Thursday
	m := newService().MonthDetails(2025, 7, []calendar.CustomHoliday{
		{Day: 14, Name: "Founders Day"},
	})

	require.Len(t, m.Holidays, 2)
	byDay := map[int]calendar.Holiday{}
	for _, h := range m.Holidays {
		byDay[h.Day] = h
	}
	assert.Equal(t, calendar.HolidayTypeCustom, byDay[14].Type)
	assert.Equal(t, "Founders Day", byDay[14].Name)
	assert.Equal(t, calendar.HolidayTypePredefined, byDay[15].Type)
	assert.Equal(t, 19, m.WorkingDays)
}

func TestMonthDetails_PredefinedWinsOverCustom(t *testing.T) {
	m := newService().MonthDetails(2025, 7, []calendar.CustomHoliday{
		{Day: 15, Name: "Company Offsite"},
	})

	require.Len(t, m.Holidays, 1)
	assert.Equal(t, "Independence Day", m.Holidays[0].Name)
	assert.Equal(t, calendar.HolidayTypePredefined, m.Holidays[0].Type)
}

func TestMonthDetails_CustomHolidayOnWeekendDropped(t *testing.T) {
	// August 16 2025 is a Saturday
	m := newService().MonthDetails(2025, 7, []calendar.CustomHoliday{
		{Day: 16, Name: "Company Day"},
	})

	require.Len(t, m.Holidays, 1)
	assert.Equal(t, 15, m.Holidays[0].Day)
	assert.Equal(t, 10, m.WeekendDays)
}

func TestMonthDetails_UnknownYearHasNoPredefinedHolidays(t *testing.T) {
	m := newService().MonthDetails(2030, 7, nil)
	assert.Empty(t, m.Holidays)
}

func TestMonthDetails_LeapFebruary(t *testing.T) {
	assert.Equal(t, 29, newService().MonthDetails(2024, 1, nil).TotalDays)
	assert.Equal(t, 28, newService().MonthDetails(2025, 1, nil).TotalDays)
}

func TestMonthDetails_DayClassificationInvariant(t *testing.T) {
	svc := newService()

	for year := 2024; year <= 2027; year++ {
		for monthIndex := 0; monthIndex < 12; monthIndex++ {
			m := svc.MonthDetails(year, monthIndex, []calendar.CustomHoliday{
				{Day: 5, Name: "Org Holiday A"},
				{Day: 20, Name: "Org Holiday B"},
			})

			sum := m.WorkingDays + m.WeekendDays + len(m.Holidays)
			assert.Equal(t, m.TotalDays, sum, "%d-%02d: %d != %d", year, monthIndex+1, m.TotalDays, sum)

			for _, h := range m.Holidays {
				wd := h.Date.Weekday()
				assert.NotEqual(t, time.Saturday, wd)
				assert.NotEqual(t, time.Sunday, wd)
			}
		}
	}
}
