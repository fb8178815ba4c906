package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListMonth(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)
	MonthlySummary(ctx context.Context, employeeID string, month, year int) (MonthlySummaryResponse, error)
}
