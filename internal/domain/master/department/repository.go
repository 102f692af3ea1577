package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, department Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context, includeInactive bool) ([]Department, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (Department, error)
	ToggleStatus(ctx context.Context, id string, active bool) (Department, error)
}
