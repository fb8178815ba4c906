package calendar

import "time"

// FixedHoliday is a national holiday entry in the curated table.
type FixedHoliday struct {
	Month time.Month
	Day   int
	Name  string
}

// HolidayProvider supplies the fixed-date national holiday set for a year.
// Providers must degrade gracefully: an unknown year returns an empty set,
// never an error.
type HolidayProvider interface {
	FixedHolidays(year int) []FixedHoliday
}

// StaticHolidayProvider serves a hand-curated table keyed by year.
type StaticHolidayProvider struct {
	table map[int][]FixedHoliday
}

func NewStaticHolidayProvider(table map[int][]FixedHoliday) *StaticHolidayProvider {
	return &StaticHolidayProvider{table: table}
}

func (p *StaticHolidayProvider) FixedHolidays(year int) []FixedHoliday {
	return p.table[year]
}

// NewNationalHolidayProvider returns the provider for Indian national
// holidays. New years are added here; there is no external calendar source.
func NewNationalHolidayProvider() *StaticHolidayProvider {
	national := []FixedHoliday{
		{Month: time.January, Day: 1, Name: "New Year's Day"},
		{Month: time.January, Day: 26, Name: "Republic Day"},
		{Month: time.May, Day: 1, Name: "Labour Day"},
		{Month: time.August, Day: 15, Name: "Independence Day"},
		{Month: time.October, Day: 2, Name: "Gandhi Jayanti"},
		{Month: time.December, Day: 25, Name: "Christmas Day"},
	}

	table := make(map[int][]FixedHoliday)
	for year := 2024; year <= 2026; year++ {
		table[year] = national
	}
	return NewStaticHolidayProvider(table)
}
