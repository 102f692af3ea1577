package justification

import "context"

type JustificationService interface {
	// Create files a pending justification for the authenticated user.
	Create(ctx context.Context, req CreateJustificationRequest) (JustificationResponse, error)

	// ManagerCreate files on behalf of an employee and approves immediately.
	ManagerCreate(ctx context.Context, req ManagerCreateJustificationRequest) (JustificationResponse, error)

	ListMine(ctx context.Context) ([]JustificationResponse, error)

	// ListPending is the approval queue, scoped to the manager's department.
	ListPending(ctx context.Context) ([]JustificationResponse, error)

	Decide(ctx context.Context, req DecideJustificationRequest) (JustificationResponse, error)
}
