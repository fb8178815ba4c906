package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vetanhr/payroll-backend-go/internal/domain/attendance"
	"github.com/vetanhr/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.Mark(r.Context(), markReq)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked", record)
}

// ListMonth implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := queryInt(r, "month", 0)
	year := queryInt(r, "year", 0)
	if employeeID == "" || month < 1 || month > 12 || year == 0 {
		response.BadRequest(w, "Query parameters employee_id, month (1-12) and year are required", nil)
		return
	}

	records, err := a.attendanceService.ListMonth(r.Context(), employeeID, month, year)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MonthlySummary implements AttendanceHandler.
func (a *AttendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := queryInt(r, "month", 0)
	year := queryInt(r, "year", 0)
	if employeeID == "" || month < 1 || month > 12 || year == 0 {
		response.BadRequest(w, "Query parameters employee_id, month (1-12) and year are required", nil)
		return
	}

	summary, err := a.attendanceService.MonthlySummary(r.Context(), employeeID, month, year)
	if err != nil {
		slog.Error("Attendance summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
