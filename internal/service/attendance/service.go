package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/vetanhr/payroll-backend-go/internal/domain/attendance"
	"github.com/vetanhr/payroll-backend-go/internal/domain/calendar"
	"github.com/vetanhr/payroll-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    calendar.OrgHolidayRepository
	calendarSvc    calendar.CalendarService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo calendar.OrgHolidayRepository,
	calendarSvc calendar.CalendarService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		calendarSvc:    calendarSvc,
	}
}

// Mark records attendance for one employee and day. Weekends and holidays are
// rejected: only days the calendar classifies as working days can be marked.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	working, err := s.isWorkingDay(ctx, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !working {
		return attendance.AttendanceResponse{}, attendance.ErrNotAWorkingDay
	}

	record, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		Note:       req.Note,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceResponse(record), nil
}

func (s *AttendanceServiceImpl) ListMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapAttendanceResponse(r))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string, month, year int) (attendance.MonthlySummaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	cal, err := s.monthDetails(ctx, year, month)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, employeeID, month, year)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	return attendance.MonthlySummaryResponse{
		EmployeeID:  employeeID,
		Month:       month,
		Year:        year,
		WorkingDays: cal.WorkingDays,
		PresentDays: counts[attendance.StatusPresent],
		HalfDays:    counts[attendance.StatusHalfDay],
		AbsentDays:  counts[attendance.StatusAbsent],
		LeaveDays:   counts[attendance.StatusOnLeave],
	}, nil
}

func (s *AttendanceServiceImpl) isWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false, nil
	}

	cal, err := s.monthDetails(ctx, date.Year(), int(date.Month()))
	if err != nil {
		return false, err
	}

	for _, h := range cal.Holidays {
		if h.Day == date.Day() {
			return false, nil
		}
	}
	return true, nil
}

func (s *AttendanceServiceImpl) monthDetails(ctx context.Context, year, month int) (calendar.CalendarMonth, error) {
	orgHolidays, err := s.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return calendar.CalendarMonth{}, fmt.Errorf("failed to load organization holidays: %w", err)
	}

	custom := make([]calendar.CustomHoliday, 0, len(orgHolidays))
	for _, h := range orgHolidays {
		custom = append(custom, calendar.CustomHoliday{Day: h.Day, Name: h.Name})
	}

	return s.calendarSvc.MonthDetails(year, month-1, custom), nil
}

func mapAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
		Note:       a.Note,
	}
}
