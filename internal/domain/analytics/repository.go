package analytics

import (
	"context"
	"time"
)

// EmployeeRef is the roster projection the aggregators read.
type EmployeeRef struct {
	ID         string
	Name       string
	Department string
}

// AttendanceEvent is a raw clock-in used by the trend and rollup aggregators.
type AttendanceEvent struct {
	EmployeeID string
	ClockIn    time.Time
}

// ReviewEvent is a raw performance review used by the rating aggregators.
type ReviewEvent struct {
	EmployeeID    string
	OverallRating float64
	ReviewDate    time.Time
}

// AnalyticsRepository provides the raw reads the aggregators consume. All
// range filters are inclusive on both ends. Aggregation happens in the
// service; the repository never summarizes beyond simple counts.
type AnalyticsRepository interface {
	ListEmployees(ctx context.Context) ([]EmployeeRef, error)
	ListAttendanceEvents(ctx context.Context, start, end time.Time) ([]AttendanceEvent, error)
	ListReviewEvents(ctx context.Context, start, end time.Time) ([]ReviewEvent, error)

	CountEmployeesJoinedBy(ctx context.Context, cutoff time.Time) (int64, error)
	CountAttendanceEvents(ctx context.Context, start, end time.Time) (int64, error)
	// CountLeaveRequests counts requests created within the range; an empty
	// status counts requests of any status.
	CountLeaveRequests(ctx context.Context, start, end time.Time, status string) (int64, error)
}
