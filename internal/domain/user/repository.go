package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByCPF(ctx context.Context, cpf string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves users, optionally restricted to a department.
	// departmentID == nil means no restriction (admin view).
	List(ctx context.Context, departmentID *string) ([]User, error)

	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string, mustChange bool) error
}
