package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusOnLeave Status = "on_leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusOnLeave:
		return true
	}
	return false
}

// MonthlySummary aggregates one employee's attendance for a period together
// with the calendar's working-day count.
type MonthlySummary struct {
	EmployeeID  string
	Month       int
	Year        int
	WorkingDays int
	PresentDays int
	HalfDays    int
	AbsentDays  int
	LeaveDays   int
}
