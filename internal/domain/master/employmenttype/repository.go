package employmenttype

import "context"

type EmploymentTypeRepository interface {
	Create(ctx context.Context, employmentType EmploymentType) (EmploymentType, error)
	GetByID(ctx context.Context, id string) (EmploymentType, error)
	List(ctx context.Context, includeInactive bool) ([]EmploymentType, error)
	Update(ctx context.Context, req UpdateEmploymentTypeRequest) (EmploymentType, error)
	ToggleStatus(ctx context.Context, id string, active bool) (EmploymentType, error)
}
