package justificationtype

import (
	"time"

	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// JustificationType is an admin-managed entry of the justification catalog.
type JustificationType struct {
	ID                      string
	Name                    string
	Description             *string
	RequiresDocumentation   bool
	RequiresRecordSelection bool
	IsActive                bool
	CreatedAt               time.Time
}

type JustificationTypeResponse struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	Description             *string `json:"description,omitempty"`
	RequiresDocumentation   bool    `json:"requires_documentation"`
	RequiresRecordSelection bool    `json:"requires_record_selection"`
	IsActive                bool    `json:"is_active"`
}

func ToResponse(t JustificationType) JustificationTypeResponse {
	return JustificationTypeResponse{
		ID:                      t.ID,
		Name:                    t.Name,
		Description:             t.Description,
		RequiresDocumentation:   t.RequiresDocumentation,
		RequiresRecordSelection: t.RequiresRecordSelection,
		IsActive:                t.IsActive,
	}
}

type CreateJustificationTypeRequest struct {
	Name                    string  `json:"name"`
	Description             *string `json:"description,omitempty"`
	RequiresDocumentation   bool    `json:"requires_documentation"`
	RequiresRecordSelection bool    `json:"requires_record_selection"`
}

func (r *CreateJustificationTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJustificationTypeRequest struct {
	ID                      string  `json:"-"`
	Name                    *string `json:"name,omitempty"`
	Description             *string `json:"description,omitempty"`
	RequiresDocumentation   *bool   `json:"requires_documentation,omitempty"`
	RequiresRecordSelection *bool   `json:"requires_record_selection,omitempty"`
}

func (r *UpdateJustificationTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
