package user

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

type CreateUserRequest struct {
	CPF              string  `json:"cpf"`
	Username         string  `json:"username"`
	Name             string  `json:"name"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty"`
	Role             string  `json:"role"`
	DepartmentID     *string `json:"department_id,omitempty"`
	FunctionID       *string `json:"function_id,omitempty"`
	EmploymentTypeID *string `json:"employment_type_id,omitempty"`
	AdmissionDate    *string `json:"admission_date,omitempty"` // YYYY-MM-DD
	DailyWorkHours   float64 `json:"daily_work_hours"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must be in the format 000.000.000-00",
		})
	}

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid brazilian phone number",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid e-mail address",
		})
	}

	validRoles := []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}
	if !validator.IsInSlice(r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, manager, admin",
		})
	}

	if r.AdmissionDate != nil && *r.AdmissionDate != "" {
		if _, valid := validator.IsValidDate(*r.AdmissionDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "admission_date",
				Message: "admission_date must be in YYYY-MM-DD format",
			})
		}
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

type UpdateUserRequest struct {
	ID               string   `json:"-"`
	CPF              *string  `json:"cpf,omitempty"`
	Username         *string  `json:"username,omitempty"`
	Password         *string  `json:"password,omitempty"`
	Name             *string  `json:"name,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Email            *string  `json:"email,omitempty"`
	Role             *string  `json:"role,omitempty"`
	DepartmentID     *string  `json:"department_id,omitempty"`
	FunctionID       *string  `json:"function_id,omitempty"`
	EmploymentTypeID *string  `json:"employment_type_id,omitempty"`
	AdmissionDate    *string  `json:"admission_date,omitempty"`
	DismissalDate    *string  `json:"dismissal_date,omitempty"`
	Status           *string  `json:"status,omitempty"`
	DailyWorkHours   *float64 `json:"daily_work_hours,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.CPF != nil && !validator.IsValidCPF(*r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must be in the format 000.000.000-00",
		})
	}

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid brazilian phone number",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid e-mail address",
		})
	}

	if r.Role != nil {
		validRoles := []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: employee, manager, admin",
			})
		}
	}

	if r.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusBlocked), string(StatusInactive)}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, blocked, inactive",
			})
		}
	}

	for field, date := range map[string]*string{
		"admission_date": r.AdmissionDate,
		"dismissal_date": r.DismissalDate,
	} {
		if date != nil && *date != "" {
			if _, valid := validator.IsValidDate(*date); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
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

type UserResponse struct {
	ID                 string  `json:"id"`
	CPF                string  `json:"cpf"`
	Username           string  `json:"username"`
	Name               string  `json:"name"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty"`
	Role               string  `json:"role"`
	DepartmentID       *string `json:"department_id,omitempty"`
	DepartmentName     *string `json:"department_name,omitempty"`
	FunctionID         *string `json:"function_id,omitempty"`
	FunctionName       *string `json:"function_name,omitempty"`
	EmploymentTypeID   *string `json:"employment_type_id,omitempty"`
	EmploymentTypeName *string `json:"employment_type_name,omitempty"`
	AdmissionDate      *string `json:"admission_date,omitempty"`
	DismissalDate      *string `json:"dismissal_date,omitempty"`
	Status             string  `json:"status"`
	MustChangePassword bool    `json:"must_change_password"`
	DailyWorkHours     float64 `json:"daily_work_hours"`
	CreatedAt          string  `json:"created_at"`
}

// CreatedUserResponse carries the generated temporary password back to the
// admin who created the account.
type CreatedUserResponse struct {
	User         UserResponse `json:"user"`
	TempPassword string       `json:"temp_password"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		CPF:                u.CPF,
		Username:           u.Username,
		Name:               u.Name,
		Phone:              u.Phone,
		Email:              u.Email,
		Role:               string(u.Role),
		DepartmentID:       u.DepartmentID,
		DepartmentName:     u.DepartmentName,
		FunctionID:         u.FunctionID,
		FunctionName:       u.FunctionName,
		EmploymentTypeID:   u.EmploymentTypeID,
		EmploymentTypeName: u.EmploymentTypeName,
		AdmissionDate:      u.AdmissionDate,
		DismissalDate:      u.DismissalDate,
		Status:             string(u.Status),
		MustChangePassword: u.MustChangePassword,
		DailyWorkHours:     u.DailyWorkHours,
		CreatedAt:          u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
