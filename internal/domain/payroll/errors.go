package payroll

import "errors"

var (
	ErrRunNotFound         = errors.New("payroll run not found")
	ErrRunAlreadyExists    = errors.New("payroll run already exists for this period")
	ErrCalculationNotFound = errors.New("payroll calculation not found")
	ErrInvalidPeriod       = errors.New("invalid payroll period")
)
