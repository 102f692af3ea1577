package justification

import "context"

// JustificationRepository defines data access methods for absence
// justifications.
type JustificationRepository interface {
	Create(ctx context.Context, j Justification) (Justification, error)

	GetByID(ctx context.Context, id string) (Justification, error)

	ListForUser(ctx context.Context, userID string) ([]Justification, error)

	// ListForUserByDateRange retrieves justifications in [startDate, endDate]
	// inclusive, ascending by date. When approvedOnly is true only
	// status = approved entries are returned.
	ListForUserByDateRange(ctx context.Context, userID string, startDate string, endDate string, approvedOnly bool) ([]Justification, error)

	// ListPending retrieves pending justifications, optionally restricted to
	// a department (manager view).
	ListPending(ctx context.Context, departmentID *string) ([]Justification, error)

	// Decide flips a pending justification to approved or rejected.
	Decide(ctx context.Context, id string, approverID string, approved bool) (Justification, error)
}
