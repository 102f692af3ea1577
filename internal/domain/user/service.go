package user

import "context"

type UserService interface {
	// Create registers a user with a temporary password derived from the
	// CPF. The password is returned once so the admin can hand it over.
	Create(ctx context.Context, req CreateUserRequest) (CreatedUserResponse, error)

	GetByID(ctx context.Context, id string) (UserResponse, error)

	// GetMe returns the authenticated user's own profile.
	GetMe(ctx context.Context) (UserResponse, error)

	// List returns all users for admins, the own department for managers.
	List(ctx context.Context) ([]UserResponse, error)

	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
}
