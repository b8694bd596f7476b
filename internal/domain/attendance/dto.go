package attendance

import (
	"time"

	"github.com/Core-Staff/core-staff/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the attendance log listing.
type ListFilter struct {
	Query      string
	Department string
	Status     string
}

type AttendanceLogResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	ClockIn      string  `json:"clockIn"`
	ClockOut     *string `json:"clockOut,omitempty"`
	Status       string  `json:"status"`
}

func ToResponse(l AttendanceLog) AttendanceLogResponse {
	resp := AttendanceLogResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Department:   l.Department,
		ClockIn:      l.ClockIn.UTC().Format(time.RFC3339),
		Status:       string(l.Status),
	}
	if l.ClockOut != nil {
		out := l.ClockOut.UTC().Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}

func ToResponseList(logs []AttendanceLog) []AttendanceLogResponse {
	out := make([]AttendanceLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToResponse(l))
	}
	return out
}
