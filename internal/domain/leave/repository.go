package leave

import "context"

type LeaveRequestRepository interface {
	// List retrieves requests newest first with the employee name and
	// department joined in.
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) (LeaveRequest, error)
}
