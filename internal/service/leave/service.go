package leave

import (
	"context"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/employee"
	"github.com/Core-Staff/core-staff/internal/domain/leave"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequestResponse, error) {
	if filter.Status == "all" {
		filter.Status = ""
	}

	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return leave.ToResponseList(requests), nil
}

// Submit implements leave.LeaveService. The requester identifies themselves
// by email; every new request starts out pending.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		StartDate:  leave.ParseDateOrDateTime(req.StartDate),
		Status:     leave.StatusPending,
	}
	if req.EndDate != "" {
		end := leave.ParseDateOrDateTime(req.EndDate)
		request.EndDate = &end
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// The insert does not return the joined roster fields.
	created.EmployeeName = &emp.Name
	created.Department = &emp.Department
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	return leave.ToResponse(created), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, id, leave.Status(req.Status))
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// Lookup implements leave.LeaveService. The leave form uses it to prefill
// the requester's roster entry.
func (s *LeaveServiceImpl) Lookup(ctx context.Context, req leave.LookupRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}
