package response

import (
	"errors"
	"net/http"

	"github.com/vetanhr/payroll-backend-go/internal/domain/attendance"
	"github.com/vetanhr/payroll-backend-go/internal/domain/auth"
	"github.com/vetanhr/payroll-backend-go/internal/domain/calendar"
	"github.com/vetanhr/payroll-backend-go/internal/domain/compliance"
	"github.com/vetanhr/payroll-backend-go/internal/domain/employee"
	"github.com/vetanhr/payroll-backend-go/internal/domain/payroll"
	"github.com/vetanhr/payroll-backend-go/internal/domain/user"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrHRPrivilegeRequired):
		Forbidden(w, "HR or admin role required")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin role required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Organization holiday not found")
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "Organization holiday already exists for this date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotAWorkingDay):
		BadRequest(w, "Attendance can only be marked on a working day", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunAlreadyExists):
		Conflict(w, "Payroll run already exists for this period")
	case errors.Is(err, payroll.ErrCalculationNotFound):
		NotFound(w, "Payroll calculation not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Compliance domain errors
	case errors.Is(err, compliance.ErrReturnNotFound):
		NotFound(w, "Statutory return not found")
	case errors.Is(err, compliance.ErrReturnAlreadyFiled):
		Conflict(w, "Statutory return already filed")
	case errors.Is(err, compliance.ErrRunNotProcessed):
		BadRequest(w, "Payroll run for this period has not been processed", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
