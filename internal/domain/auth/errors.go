package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrOAuthNotConfigured  = errors.New("google login is not configured")
	ErrOAuthEmailNotFound  = errors.New("no account registered for this google e-mail")
)
