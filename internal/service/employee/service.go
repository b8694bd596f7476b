package employee

import (
	"context"
	"errors"
	"time"

	"github.com/Core-Staff/core-staff/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	// The UI sends "all" for an unset dropdown.
	if filter.Department == "all" {
		filter.Department = ""
	}
	if filter.Status == "all" {
		filter.Status = ""
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return employee.ToResponseList(employees), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	status := employee.StatusPending
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	joinDate := s.now().UTC()
	if req.JoinDate != "" {
		joinDate = parseDateOrDateTime(req.JoinDate)
	}

	emp := employee.Employee{
		ID:         uuid.NewString(),
		Name:       req.FullName(),
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		Status:     status,
		Avatar:     optional(req.Avatar),
		Phone:      optional(req.Phone),
		Location:   optional(req.Location),
		JoinDate:   joinDate,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil && *req.Email != emp.Email {
		if _, err := s.employeeRepo.GetByEmail(ctx, *req.Email); err == nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.Avatar != nil {
		emp.Avatar = req.Avatar
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Location != nil {
		emp.Location = req.Location
	}
	if req.JoinDate != nil {
		emp.JoinDate = parseDateOrDateTime(*req.JoinDate)
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// FindByEmail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) FindByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseDateOrDateTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	t, _ := time.Parse("2006-01-02", s)
	return t.UTC()
}
