package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages reference data and users
	RoleManager  Role = "manager"  // Approves justifications and adjusts records for own department
	RoleEmployee Role = "employee" // Punches in/out, submits justifications
)

type Status string

const (
	StatusActive   Status = "active"
	StatusBlocked  Status = "blocked"
	StatusInactive Status = "inactive"
)

type User struct {
	ID                 string
	CPF                string
	Username           string
	PasswordHash       string
	Name               string
	Phone              *string
	Email              *string
	Role               Role
	DepartmentID       *string
	FunctionID         *string
	EmploymentTypeID   *string
	AdmissionDate      *string // YYYY-MM-DD
	DismissalDate      *string // YYYY-MM-DD
	Status             Status
	MustChangePassword bool
	DailyWorkHours     float64
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joins
	DepartmentName     *string
	FunctionName       *string
	EmploymentTypeName *string
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanApprove checks if user can approve justifications
func (u *User) CanApprove() bool {
	return u.IsManager()
}

// IsActive checks if the account may authenticate
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
