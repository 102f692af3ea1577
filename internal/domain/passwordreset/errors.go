package passwordreset

import "errors"

var (
	ErrRequestNotFound = errors.New("password reset request not found")
	ErrAlreadyResolved = errors.New("password reset request already resolved")
)
