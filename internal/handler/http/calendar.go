package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vetanhr/payroll-backend-go/internal/domain/calendar"
	"github.com/vetanhr/payroll-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	MonthView(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	holidayService calendar.HolidayService
}

func NewCalendarHandler(holidayService calendar.HolidayService) CalendarHandler {
	return &CalendarHandlerImpl{holidayService: holidayService}
}

// MonthView implements CalendarHandler. Path month is 1-12.
func (c *CalendarHandlerImpl) MonthView(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Month must be between 1 and 12", nil)
		return
	}

	view, err := c.holidayService.MonthView(r.Context(), year, month)
	if err != nil {
		slog.Error("Calendar month view error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// CreateHoliday implements CalendarHandler.
func (c *CalendarHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var createReq calendar.CreateOrgHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	holiday, err := c.holidayService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Organization holiday created", "holiday_id", holiday.ID, "name", holiday.Name)
	response.Created(w, "Organization holiday created", holiday)
}

// ListHolidays implements CalendarHandler.
func (c *CalendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", 0)
	month := queryInt(r, "month", 0)
	if year == 0 || month < 1 || month > 12 {
		response.BadRequest(w, "Query parameters year and month (1-12) are required", nil)
		return
	}

	holidays, err := c.holidayService.ListByMonth(r.Context(), year, month)
	if err != nil {
		slog.Error("List holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// DeleteHoliday implements CalendarHandler.
func (c *CalendarHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.holidayService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Organization holiday deleted", nil)
}
