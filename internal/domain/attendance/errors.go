package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotAWorkingDay     = errors.New("attendance can only be marked on a working day")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
