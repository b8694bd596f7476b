package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    *time.Time
	Status     Status
	CreatedAt  time.Time

	// Joined from the roster for responses; nil when the employee is gone.
	EmployeeName *string
	Department   *string
}
