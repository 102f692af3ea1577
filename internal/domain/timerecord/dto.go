package timerecord

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// TIME RECORD DTOs
// ========================================

type TimeRecordResponse struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	UserName   *string  `json:"user_name,omitempty"`
	Date       string   `json:"date"`
	Entry1     *string  `json:"entry1,omitempty"`
	Exit1      *string  `json:"exit1,omitempty"`
	Entry2     *string  `json:"entry2,omitempty"`
	Exit2      *string  `json:"exit2,omitempty"`
	TotalHours *float64 `json:"total_hours,omitempty"`
	IsAdjusted bool     `json:"is_adjusted"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func ToResponse(r TimeRecord) TimeRecordResponse {
	return TimeRecordResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		UserName:   r.UserName,
		Date:       r.Date,
		Entry1:     r.Entry1,
		Exit1:      r.Exit1,
		Entry2:     r.Entry2,
		Exit2:      r.Exit2,
		TotalHours: r.TotalHours,
		IsAdjusted: r.IsAdjusted,
		CreatedAt:  r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListTimeRecordsFilter narrows a listing to one month (YYYY-MM).
type ListTimeRecordsFilter struct {
	Month *string `json:"month,omitempty"`
}

func (f *ListTimeRecordsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && *f.Month != "" {
		if _, valid := validator.IsValidMonth(*f.Month); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustTimeRecordRequest is the manager edit of a past punch card. Every
// provided slot replaces the stored one; TotalHours is recomputed on write.
type AdjustTimeRecordRequest struct {
	ID     string  `json:"-"`
	Entry1 *string `json:"entry1,omitempty"`
	Exit1  *string `json:"exit1,omitempty"`
	Entry2 *string `json:"entry2,omitempty"`
	Exit2  *string `json:"exit2,omitempty"`
}

func (r *AdjustTimeRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	for field, value := range map[string]*string{
		"entry1": r.Entry1,
		"exit1":  r.Exit1,
		"entry2": r.Entry2,
		"exit2":  r.Exit2,
	} {
		if value != nil && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
