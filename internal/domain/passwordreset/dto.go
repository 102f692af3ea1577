package passwordreset

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// CreateRequest is filed by an unauthenticated employee who lost access.
type CreateRequest struct {
	CPF string `json:"cpf"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must be in the format 000.000.000-00",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ResolveRequest is the admin action that sets the user's new password.
type ResolveRequest struct {
	ID          string `json:"-"`
	NewPassword string `json:"new_password"`
}

func (r *ResolveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	CPF         string  `json:"cpf"`
	RequestedAt string  `json:"requested_at"`
	Status      string  `json:"status"`
	ResolvedBy  *string `json:"resolved_by,omitempty"`
	ResolvedAt  *string `json:"resolved_at,omitempty"`
}

func ToResponse(r Request) RequestResponse {
	var resolvedAt *string
	if r.ResolvedAt != nil {
		formatted := r.ResolvedAt.Format("2006-01-02 15:04:05")
		resolvedAt = &formatted
	}

	return RequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		CPF:         r.CPF,
		RequestedAt: r.RequestedAt.Format("2006-01-02 15:04:05"),
		Status:      string(r.Status),
		ResolvedBy:  r.ResolvedBy,
		ResolvedAt:  resolvedAt,
	}
}
