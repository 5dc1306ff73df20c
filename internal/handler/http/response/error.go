package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/spdf36/gts-hrms/internal/domain/attendance"
	"github.com/spdf36/gts-hrms/internal/domain/employee"
	"github.com/spdf36/gts-hrms/internal/domain/timesheet"
	"github.com/spdf36/gts-hrms/internal/pkg/database"
	"github.com/spdf36/gts-hrms/internal/pkg/validator"
)

var (
	ErrInvalidToken    = errors.New("invalid or missing access token")
	ErrMissingEmployee = errors.New("token is not linked to an employee")
	ErrAdminRequired   = errors.New("admin privilege required")
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, ErrMissingEmployee), errors.Is(err, ErrAdminRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Not clocked in today", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidDateRange):
		BadRequest(w, "End date is before start date", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Storage
	case errors.Is(err, database.ErrStorageUnavailable):
		slog.Error("Storage unavailable", "error", err)
		ServiceUnavailable(w, "Attendance storage is temporarily unavailable")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
