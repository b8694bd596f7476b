package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	FindByEmail(ctx context.Context, email string) (EmployeeResponse, error)
}
