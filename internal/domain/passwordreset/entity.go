package passwordreset

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

// Request is an employee-filed password reset, resolved by an admin who sets
// a new password out of band.
type Request struct {
	ID          string
	UserID      string
	CPF         string
	RequestedAt time.Time
	Status      Status
	ResolvedBy  *string
	ResolvedAt  *time.Time

	// Joins
	UserName *string
}
