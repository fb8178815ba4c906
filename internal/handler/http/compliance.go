package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vetanhr/payroll-backend-go/internal/domain/compliance"
	"github.com/vetanhr/payroll-backend-go/internal/handler/http/response"
)

type ComplianceHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	File(w http.ResponseWriter, r *http.Request)
}

type ComplianceHandlerImpl struct {
	complianceService compliance.ComplianceService
}

func NewComplianceHandler(complianceService compliance.ComplianceService) ComplianceHandler {
	return &ComplianceHandlerImpl{complianceService: complianceService}
}

// Generate implements ComplianceHandler.
func (c *ComplianceHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var generateReq compliance.GenerateReturnsRequest

	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("Generate returns decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	returns, err := c.complianceService.GenerateForPeriod(r.Context(), generateReq)
	if err != nil {
		slog.Error("Generate returns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Statutory returns generated", "month", generateReq.Month, "year", generateReq.Year)
	response.SuccessWithMessage(w, "Statutory returns generated", returns)
}

// List implements ComplianceHandler.
func (c *ComplianceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter compliance.ReturnFilter
	if month := queryInt(r, "month", 0); month != 0 {
		filter.Month = &month
	}
	if year := queryInt(r, "year", 0); year != 0 {
		filter.Year = &year
	}
	if returnType := r.URL.Query().Get("type"); returnType != "" {
		filter.Type = &returnType
	}

	returns, err := c.complianceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List returns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, returns)
}

// File implements ComplianceHandler.
func (c *ComplianceHandlerImpl) File(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	filed, err := c.complianceService.File(r.Context(), id)
	if err != nil {
		slog.Error("File return service error", "error", err, "return_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Statutory return filed", "return_id", id)
	response.SuccessWithMessage(w, "Statutory return filed", filed)
}
