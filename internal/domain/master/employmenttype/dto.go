package employmenttype

import (
	"time"

	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// EmploymentType is a contract category carrying the default contracted
// hours per working day for users hired under it.
type EmploymentType struct {
	ID             string
	Name           string
	Description    *string
	DailyWorkHours float64
	IsActive       bool
	CreatedAt      time.Time
}

type EmploymentTypeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	DailyWorkHours float64 `json:"daily_work_hours"`
	IsActive       bool    `json:"is_active"`
}

func ToResponse(e EmploymentType) EmploymentTypeResponse {
	return EmploymentTypeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		DailyWorkHours: e.DailyWorkHours,
		IsActive:       e.IsActive,
	}
}

type CreateEmploymentTypeRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	DailyWorkHours float64 `json:"daily_work_hours"`
}

func (r *CreateEmploymentTypeRequest) Validate() error {
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

	if r.DailyWorkHours <= 0 || r.DailyWorkHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_work_hours",
			Message: "daily_work_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmploymentTypeRequest struct {
	ID             string   `json:"-"`
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	DailyWorkHours *float64 `json:"daily_work_hours,omitempty"`
}

func (r *UpdateEmploymentTypeRequest) Validate() error {
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

	if r.DailyWorkHours != nil && (*r.DailyWorkHours <= 0 || *r.DailyWorkHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_work_hours",
			Message: "daily_work_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
