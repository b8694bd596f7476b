package attendance

import (
	"context"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/attendance"
	"github.com/Core-Staff/core-staff/internal/domain/employee"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceLogResponse, error) {
	if filter.Department == "all" {
		filter.Department = ""
	}
	if filter.Status == "all" {
		filter.Status = ""
	}

	logs, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponseList(logs), nil
}

// ClockIn implements attendance.AttendanceService. The employee name and
// department are captured on the log at clock-in time.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceLogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceLogResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceLogResponse{}, err
	}

	log := attendance.AttendanceLog{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Department:   emp.Department,
		ClockIn:      s.now().UTC(),
		Status:       attendance.StatusOpen,
	}

	created, err := s.attendanceRepo.Create(ctx, log)
	if err != nil {
		return attendance.AttendanceLogResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, id string) (attendance.AttendanceLogResponse, error) {
	log, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceLogResponse{}, err
	}
	if log.Status == attendance.StatusClosed || log.ClockOut != nil {
		return attendance.AttendanceLogResponse{}, attendance.ErrAlreadyClockedOut
	}

	closed, err := s.attendanceRepo.Close(ctx, id, s.now().UTC())
	if err != nil {
		return attendance.AttendanceLogResponse{}, err
	}

	return attendance.ToResponse(closed), nil
}
