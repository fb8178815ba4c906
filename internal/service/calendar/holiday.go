package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/vetanhr/payroll-backend-go/internal/domain/calendar"
)

type HolidayServiceImpl struct {
	holidayRepo calendar.OrgHolidayRepository
	calendarSvc calendar.CalendarService
}

func NewHolidayService(
	holidayRepo calendar.OrgHolidayRepository,
	calendarSvc calendar.CalendarService,
) calendar.HolidayService {
	return &HolidayServiceImpl{
		holidayRepo: holidayRepo,
		calendarSvc: calendarSvc,
	}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req calendar.CreateOrgHolidayRequest) (calendar.OrgHolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.OrgHolidayResponse{}, err
	}

	// Reject dates the month does not have, e.g. February 30.
	date := time.Date(req.Year, time.Month(req.Month), req.Day, 0, 0, 0, 0, time.UTC)
	if date.Day() != req.Day || int(date.Month()) != req.Month {
		return calendar.OrgHolidayResponse{}, fmt.Errorf("invalid date: %04d-%02d-%02d does not exist", req.Year, req.Month, req.Day)
	}

	h, err := s.holidayRepo.Create(ctx, calendar.OrgHoliday{
		Year:  req.Year,
		Month: req.Month,
		Day:   req.Day,
		Name:  req.Name,
	})
	if err != nil {
		return calendar.OrgHolidayResponse{}, err
	}

	return mapOrgHolidayResponse(h), nil
}

func (s *HolidayServiceImpl) ListByMonth(ctx context.Context, year, month int) ([]calendar.OrgHolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]calendar.OrgHolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, mapOrgHolidayResponse(h))
	}
	return result, nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func (s *HolidayServiceImpl) MonthView(ctx context.Context, year, month int) (calendar.CalendarMonthResponse, error) {
	holidays, err := s.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return calendar.CalendarMonthResponse{}, err
	}

	custom := make([]calendar.CustomHoliday, 0, len(holidays))
	for _, h := range holidays {
		custom = append(custom, calendar.CustomHoliday{Day: h.Day, Name: h.Name})
	}

	m := s.calendarSvc.MonthDetails(year, month-1, custom)
	return calendar.NewCalendarMonthResponse(m), nil
}

func mapOrgHolidayResponse(h calendar.OrgHoliday) calendar.OrgHolidayResponse {
	return calendar.OrgHolidayResponse{
		ID:    h.ID,
		Year:  h.Year,
		Month: h.Month,
		Day:   h.Day,
		Name:  h.Name,
	}
}
