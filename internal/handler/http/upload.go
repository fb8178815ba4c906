package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vetanhr/payroll-backend-go/internal/domain/employee"
	"github.com/vetanhr/payroll-backend-go/internal/handler/http/response"
	"github.com/vetanhr/payroll-backend-go/internal/service/file"
)

const maxUploadSize = 10 << 20 // 10 MiB

type UploadHandler interface {
	UploadDocument(w http.ResponseWriter, r *http.Request)
	UploadAvatar(w http.ResponseWriter, r *http.Request)
}

type UploadHandlerImpl struct {
	fileService     file.FileService
	employeeService employee.EmployeeService
}

func NewUploadHandler(fileService file.FileService, employeeService employee.EmployeeService) UploadHandler {
	return &UploadHandlerImpl{
		fileService:     fileService,
		employeeService: employeeService,
	}
}

// UploadDocument implements UploadHandler.
func (u *UploadHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	if _, err := u.employeeService.Get(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field", nil)
		return
	}
	defer f.Close()

	documentType := r.FormValue("document_type")

	path, err := u.fileService.UploadDocument(r.Context(), employeeID, f, header.Filename, documentType)
	if err != nil {
		slog.Error("Upload document error", "error", err, "employee_id", employeeID)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	slog.Info("Document uploaded", "employee_id", employeeID, "path", path)
	response.Created(w, "Document uploaded", map[string]string{"path": path})
}

// UploadAvatar implements UploadHandler.
func (u *UploadHandlerImpl) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	if _, err := u.employeeService.Get(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field", nil)
		return
	}
	defer f.Close()

	path, err := u.fileService.UploadAvatar(r.Context(), employeeID, f, header.Filename)
	if err != nil {
		slog.Error("Upload avatar error", "error", err, "employee_id", employeeID)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Created(w, "Avatar uploaded", map[string]string{"path": path})
}
