package attendance

import "time"

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// AttendanceLog is one clock-in session. Employee name and department are
// denormalized at clock-in time so the log survives later roster edits.
type AttendanceLog struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Department   string
	ClockIn      time.Time
	ClockOut     *time.Time
	Status       Status
}
