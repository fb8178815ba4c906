package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	"github.com/vetanhr/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ProcessRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// ProcessRun implements PayrollHandler.
func (p *PayrollHandlerImpl) ProcessRun(w http.ResponseWriter, r *http.Request) {
	var processReq payroll.ProcessRunRequest

	if err := json.NewDecoder(r.Body).Decode(&processReq); err != nil {
		slog.Error("Process run decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	run, err := p.payrollService.ProcessRun(r.Context(), processReq)
	if err != nil {
		slog.Error("Process run service error", "error", err, "month", processReq.Month, "year", processReq.Year)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll run processed",
		"run_id", run.ID,
		"period", run.PeriodMonth, "year", run.PeriodYear,
		"employees", run.ProcessedEmployees,
	)
	response.SuccessWithMessage(w, "Payroll run processed", run)
}

// GetRun implements PayrollHandler.
func (p *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := p.payrollService.GetRun(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, run)
}

// ListRuns implements PayrollHandler.
func (p *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	var year *int
	if y := queryInt(r, "year", 0); y != 0 {
		year = &y
	}

	runs, err := p.payrollService.ListRuns(r.Context(), year)
	if err != nil {
		slog.Error("List runs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, runs)
}
