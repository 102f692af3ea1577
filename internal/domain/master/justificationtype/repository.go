package justificationtype

import "context"

type JustificationTypeRepository interface {
	Create(ctx context.Context, justificationType JustificationType) (JustificationType, error)
	GetByID(ctx context.Context, id string) (JustificationType, error)
	List(ctx context.Context, includeInactive bool) ([]JustificationType, error)
	Update(ctx context.Context, req UpdateJustificationTypeRequest) (JustificationType, error)
	ToggleStatus(ctx context.Context, id string, active bool) (JustificationType, error)
}
