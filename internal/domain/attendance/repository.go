package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert records attendance for (employee, date), overwriting a prior mark.
	Upsert(ctx context.Context, a Attendance) (Attendance, error)
	GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)
	// CountByStatus returns per-status day counts for (employee, month, year).
	CountByStatus(ctx context.Context, employeeID string, month, year int) (map[Status]int, error)
}
