package passwordreset

import "context"

type PasswordResetRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListPending(ctx context.Context) ([]Request, error)
	Resolve(ctx context.Context, id string, resolverID string) (Request, error)
}
