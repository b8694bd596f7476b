package leave

import (
	"context"

	"github.com/Core-Staff/core-staff/internal/domain/employee"
)

type LeaveService interface {
	List(ctx context.Context, filter ListFilter) ([]LeaveRequestResponse, error)
	Submit(ctx context.Context, req SubmitRequest) (LeaveRequestResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (LeaveRequestResponse, error)
	Lookup(ctx context.Context, req LookupRequest) (employee.EmployeeResponse, error)
}
