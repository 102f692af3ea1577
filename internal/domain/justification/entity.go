package justification

import "time"

type Type string

// Justification type catalog.
const (
	TypeAbsence          Type = "absence"
	TypeLate             Type = "late"
	TypeEarlyLeave       Type = "early-leave"
	TypeError            Type = "error"
	TypeVacation         Type = "vacation"
	TypeHoliday          Type = "holiday"
	TypeTraining         Type = "training"
	TypeWorkFromHome     Type = "work-from-home"
	TypeHealthProblems   Type = "health-problems"
	TypeFamilyIssue      Type = "family-issue"
	TypeExternalMeetings Type = "external-meetings"
	TypeOther            Type = "other"
)

// AllTypes lists the catalog in submission-form order.
var AllTypes = []Type{
	TypeAbsence, TypeLate, TypeEarlyLeave, TypeError,
	TypeVacation, TypeHoliday, TypeTraining, TypeWorkFromHome,
	TypeHealthProblems, TypeFamilyIssue, TypeExternalMeetings, TypeOther,
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Justification struct {
	ID             string
	UserID         string
	Date           string // YYYY-MM-DD
	Type           Type
	Reason         string
	RecordToAdjust *string // "entry1", "exit1", "entry2", "exit2" or "all"
	AbonaHoras     bool    // approved + true credits the day's contracted hours
	Status         Status
	ApprovedBy     *string
	ApprovedAt     *time.Time
	CreatedAt      time.Time

	// Joins
	UserName     *string
	DepartmentID *string
}

// DefaultAbonaHoras reports whether a justification type credits the day's
// contracted hours by default. Used when a manager files on behalf of an
// employee.
func DefaultAbonaHoras(t Type) bool {
	switch t {
	case TypeVacation, TypeHealthProblems, TypeFamilyIssue, TypeTraining:
		return true
	default:
		return false
	}
}

// IsValidType reports whether t belongs to the catalog.
func IsValidType(t Type) bool {
	for _, known := range AllTypes {
		if known == t {
			return true
		}
	}
	return false
}
