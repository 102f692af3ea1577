package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrCPFExists              = errors.New("cpf already registered")
	ErrUsernameExists         = errors.New("username already taken")
	ErrUserBlocked            = errors.New("user account is blocked")
	ErrUserInactive           = errors.New("user account is inactive")
	ErrNoDepartment           = errors.New("manager is not associated with a department")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrNothingToUpdate        = errors.New("no fields to update")
)
