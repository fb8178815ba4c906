package compliance

import "errors"

var (
	ErrReturnNotFound     = errors.New("statutory return not found")
	ErrReturnAlreadyFiled = errors.New("statutory return already filed")
	ErrRunNotProcessed    = errors.New("payroll run for this period has not been processed")
)
