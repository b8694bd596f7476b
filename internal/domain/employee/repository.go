package employee

import "context"

type EmployeeRepository interface {
	// List retrieves employees newest hire first, applying the filter.
	List(ctx context.Context, filter ListFilter) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
}
