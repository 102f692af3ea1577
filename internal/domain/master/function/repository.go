package function

import "context"

type FunctionRepository interface {
	Create(ctx context.Context, function Function) (Function, error)
	GetByID(ctx context.Context, id string) (Function, error)
	List(ctx context.Context, includeInactive bool) ([]Function, error)
	Update(ctx context.Context, req UpdateFunctionRequest) (Function, error)
	ToggleStatus(ctx context.Context, id string, active bool) (Function, error)
}
