package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error

	// Google OAuth login. LoginWithGoogle returns the consent redirect URL;
	// the callback exchanges the code and issues tokens for the user whose
	// e-mail matches the verified Google account.
	LoginWithGoogle(userAgent string) (string, error)
	OAuthCallbackGoogle(ctx context.Context, code string) (TokenResponse, error)
}
