package calendar

import "errors"

var (
	ErrHolidayNotFound = errors.New("organization holiday not found")
	ErrHolidayExists   = errors.New("organization holiday already exists for this date")
)
