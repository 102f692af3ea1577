package passwordreset

import "context"

type PasswordResetService interface {
	// CreateRequest is unauthenticated: the employee identifies by CPF.
	CreateRequest(ctx context.Context, req CreateRequest) (RequestResponse, error)

	ListPending(ctx context.Context) ([]RequestResponse, error)

	// Resolve sets the user's new password and closes the request. The user
	// must change the password on next login.
	Resolve(ctx context.Context, req ResolveRequest) (RequestResponse, error)
}
