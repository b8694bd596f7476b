package leave

import (
	"time"

	"github.com/Core-Staff/core-staff/internal/pkg/validator"
)

var validStatuses = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// SubmitRequest is the public leave form: the employee identifies themselves
// by email and the backend resolves the roster entry.
type SubmitRequest struct {
	Email     string `json:"email"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if !isDateOrDateTime(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be an ISO8601 timestamp or YYYY-MM-DD date",
		})
	}
	if r.EndDate != "" && !isDateOrDateTime(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be an ISO8601 timestamp or YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isDateOrDateTime(s string) bool {
	if _, ok := validator.IsValidDateTime(s); ok {
		return true
	}
	_, ok := validator.IsValidDate(s)
	return ok
}

// ParseDateOrDateTime parses either an RFC3339 timestamp or a bare date.
// Validate must have accepted the value first.
func ParseDateOrDateTime(s string) time.Time {
	if t, ok := validator.IsValidDateTime(s); ok {
		return t
	}
	t, _ := validator.IsValidDate(s)
	return t
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LookupRequest struct {
	Email string `json:"email"`
}

func (r *LookupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the leave request listing.
type ListFilter struct {
	Status string
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	StartDate    string  `json:"startDate"`
	EndDate      *string `json:"endDate"`
	CreatedAt    *string `json:"createdAt"`
	Status       string  `json:"status"`
}

func ToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:           lr.ID,
		EmployeeName: lr.EmployeeID,
		Department:   "",
		StartDate:    lr.StartDate.UTC().Format(time.RFC3339),
		Status:       string(lr.Status),
	}
	// A request whose employee no longer resolves falls back to the raw id.
	if lr.EmployeeName != nil && *lr.EmployeeName != "" {
		resp.EmployeeName = *lr.EmployeeName
	}
	if lr.Department != nil {
		resp.Department = *lr.Department
	}
	if lr.EndDate != nil {
		end := lr.EndDate.UTC().Format(time.RFC3339)
		resp.EndDate = &end
	}
	if !lr.CreatedAt.IsZero() {
		created := lr.CreatedAt.UTC().Format(time.RFC3339)
		resp.CreatedAt = &created
	}
	return resp
}

func ToResponseList(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, ToResponse(lr))
	}
	return out
}
