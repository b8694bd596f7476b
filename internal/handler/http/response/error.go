package response

import (
	"errors"
	"net/http"

	"github.com/Core-Staff/core-staff/internal/domain/attendance"
	"github.com/Core-Staff/core-staff/internal/domain/auth"
	"github.com/Core-Staff/core-staff/internal/domain/employee"
	"github.com/Core-Staff/core-staff/internal/domain/leave"
	"github.com/Core-Staff/core-staff/internal/domain/performance"
	"github.com/Core-Staff/core-staff/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrUserExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrLogNotFound):
		NotFound(w, "Attendance log not found")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Attendance log already closed")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Invalid leave request status", nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrGoalNotFound):
		NotFound(w, "Performance goal not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
