package justification

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// JUSTIFICATION DTOs
// ========================================

// CreateJustificationRequest is the employee submission; it always enters
// the workflow as pending.
type CreateJustificationRequest struct {
	UserID         string  `json:"-"`
	Date           string  `json:"date"` // YYYY-MM-DD
	Type           string  `json:"type"`
	Reason         string  `json:"reason"`
	RecordToAdjust *string `json:"record_to_adjust,omitempty"`
	AbonaHoras     bool    `json:"abona_horas"`
}

func (r *CreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !IsValidType(Type(r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is not in the justification type catalog",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.RecordToAdjust != nil {
		validSlots := []string{"entry1", "exit1", "entry2", "exit2", "all"}
		if !validator.IsInSlice(*r.RecordToAdjust, validSlots) {
			errs = append(errs, validator.ValidationError{
				Field:   "record_to_adjust",
				Message: "record_to_adjust must be one of: entry1, exit1, entry2, exit2, all",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManagerCreateJustificationRequest files a justification on behalf of an
// employee; it is approved immediately and AbonaHoras is derived from the
// type.
type ManagerCreateJustificationRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (r *ManagerCreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !IsValidType(Type(r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is not in the justification type catalog",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecideJustificationRequest approves or rejects a pending justification.
type DecideJustificationRequest struct {
	ID       string `json:"-"`
	Approved bool   `json:"approved"`
}

type JustificationResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	UserName       *string `json:"user_name,omitempty"`
	Date           string  `json:"date"`
	Type           string  `json:"type"`
	Reason         string  `json:"reason"`
	RecordToAdjust *string `json:"record_to_adjust,omitempty"`
	AbonaHoras     bool    `json:"abona_horas"`
	Status         string  `json:"status"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	ApprovedAt     *string `json:"approved_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(j Justification) JustificationResponse {
	var approvedAt *string
	if j.ApprovedAt != nil {
		formatted := j.ApprovedAt.Format("2006-01-02 15:04:05")
		approvedAt = &formatted
	}

	return JustificationResponse{
		ID:             j.ID,
		UserID:         j.UserID,
		UserName:       j.UserName,
		Date:           j.Date,
		Type:           string(j.Type),
		Reason:         j.Reason,
		RecordToAdjust: j.RecordToAdjust,
		AbonaHoras:     j.AbonaHoras,
		Status:         string(j.Status),
		ApprovedBy:     j.ApprovedBy,
		ApprovedAt:     approvedAt,
		CreatedAt:      j.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
