package report

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// MonthlyReportRequest identifies one user and one reference month. The
// report covers the 21st of the previous month through the 20th of the
// reference month.
type MonthlyReportRequest struct {
	UserID string `json:"user_id"`
	Month  string `json:"month"` // YYYY-MM
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if _, valid := validator.IsValidMonth(r.Month); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in the format YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HourBankResponse is the JSON rendition of the period balance, decimal
// hours alongside the formatted clock strings shown on the report.
type HourBankResponse struct {
	PeriodStart            string  `json:"period_start"`
	PeriodEnd              string  `json:"period_end"`
	ExpectedHours          float64 `json:"expected_hours"`
	WorkedHours            float64 `json:"worked_hours"`
	Balance                float64 `json:"balance"`
	ExpectedHoursFormatted string  `json:"expected_hours_formatted"`
	WorkedHoursFormatted   string  `json:"worked_hours_formatted"`
	BalanceFormatted       string  `json:"balance_formatted"`
	ApprovedJustifications int     `json:"approved_justifications"`
}
