package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// List retrieves logs newest clock-in first, applying the filter.
	List(ctx context.Context, filter ListFilter) ([]AttendanceLog, error)

	GetByID(ctx context.Context, id string) (AttendanceLog, error)

	// Create inserts a new open log.
	Create(ctx context.Context, log AttendanceLog) (AttendanceLog, error)

	// Close stamps the clock-out time and transitions the log to closed.
	Close(ctx context.Context, id string, clockOut time.Time) (AttendanceLog, error)
}
