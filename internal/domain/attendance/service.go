package attendance

import "context"

type AttendanceService interface {
	List(ctx context.Context, filter ListFilter) ([]AttendanceLogResponse, error)
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceLogResponse, error)
	ClockOut(ctx context.Context, id string) (AttendanceLogResponse, error)
}
