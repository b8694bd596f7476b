package employee

import (
	"strings"
	"time"

	"github.com/Core-Staff/core-staff/internal/pkg/validator"
)

var validStatuses = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusPending),
}

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Status     string `json:"status"`
	Avatar     string `json:"avatar"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	JoinDate   string `json:"joinDate"`
}

// FullName resolves the display name: an explicit name wins, otherwise the
// first/last pair is joined.
func (r *CreateEmployeeRequest) FullName() string {
	if !validator.IsEmpty(r.Name) {
		return strings.TrimSpace(r.Name)
	}
	parts := []string{}
	for _, p := range []string{r.FirstName, r.LastName} {
		if !validator.IsEmpty(p) {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName()) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
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
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, pending",
		})
	}
	if r.JoinDate != "" {
		if _, ok := validator.IsValidDateTime(r.JoinDate); !ok {
			if _, ok := validator.IsValidDate(r.JoinDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "joinDate",
					Message: "joinDate must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Status     *string `json:"status"`
	Avatar     *string `json:"avatar"`
	Phone      *string `json:"phone"`
	Location   *string `json:"location"`
	JoinDate   *string `json:"joinDate"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, pending",
		})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDateTime(*r.JoinDate); !ok {
			if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "joinDate",
					Message: "joinDate must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the directory listing. Zero values mean "no filter";
// a department of "all" is treated as unset, mirroring the UI dropdown.
type ListFilter struct {
	Query      string
	Department string
	Status     string
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Status     string  `json:"status"`
	Avatar     *string `json:"avatar,omitempty"`
	JoinDate   string  `json:"joinDate"`
	Phone      *string `json:"phone,omitempty"`
	Location   *string `json:"location,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Position:   e.Position,
		Status:     string(e.Status),
		Avatar:     e.Avatar,
		JoinDate:   e.JoinDate.UTC().Format(time.RFC3339),
		Phone:      e.Phone,
		Location:   e.Location,
	}
}

func ToResponseList(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}
