package response

import (
	"errors"
	"net/http"

	"github.com/pontohr/ponto-backend-go/internal/domain/auth"
	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohr/ponto-backend-go/internal/domain/master/justificationtype"
	"github.com/pontohr/ponto-backend-go/internal/domain/passwordreset"
	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		NotFound(w, "Google login is not configured")
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		NotFound(w, "No account registered for this e-mail")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrCPFExists):
		Conflict(w, "CPF already registered")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrUserBlocked):
		Forbidden(w, "Account is blocked")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Insufficient privileges")
	case errors.Is(err, user.ErrNoDepartment):
		Forbidden(w, "Manager has no department assigned")
	case errors.Is(err, user.ErrNothingToUpdate):
		BadRequest(w, "Nothing to update", nil)

	// Time record domain errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrPunchTooSoon):
		Conflict(w, "Too soon since the last punch")
	case errors.Is(err, timerecord.ErrAllSlotsFilled):
		Conflict(w, "All punches of the day are already filled")
	case errors.Is(err, timerecord.ErrExitBeforeEntry):
		BadRequest(w, "Exit time before entry time", nil)
	case errors.Is(err, timerecord.ErrAdjustSameDay):
		Conflict(w, "Records of the current day cannot be adjusted")
	case errors.Is(err, timerecord.ErrAdjustTooOld):
		Conflict(w, "Record is outside the adjustment window")

	// Justification domain errors
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrAlreadyProcessed):
		Conflict(w, "Justification already processed")
	case errors.Is(err, justification.ErrOutsideDepartment):
		Forbidden(w, "User belongs to another department")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, function.ErrFunctionNotFound):
		NotFound(w, "Function not found")
	case errors.Is(err, function.ErrFunctionNameExists):
		Conflict(w, "Function name already exists")
	case errors.Is(err, employmenttype.ErrEmploymentTypeNotFound):
		NotFound(w, "Employment type not found")
	case errors.Is(err, employmenttype.ErrEmploymentTypeNameExists):
		Conflict(w, "Employment type name already exists")
	case errors.Is(err, justificationtype.ErrJustificationTypeNotFound):
		NotFound(w, "Justification type not found")
	case errors.Is(err, justificationtype.ErrJustificationTypeNameExists):
		Conflict(w, "Justification type name already exists")

	// Password reset errors
	case errors.Is(err, passwordreset.ErrRequestNotFound):
		NotFound(w, "Password reset request not found")
	case errors.Is(err, passwordreset.ErrAlreadyResolved):
		Conflict(w, "Password reset request already resolved")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
