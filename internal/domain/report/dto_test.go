package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

func TestMonthlyReportRequest_Validate(t *testing.T) {
	const validUserID = "01890a5d-ac96-774b-bcce-b302099a8057"

	tests := []struct {
		name      string
		req       MonthlyReportRequest
		wantField string
	}{
		{
			name: "valid request",
			req:  MonthlyReportRequest{UserID: validUserID, Month: "2026-03"},
		},
		{
			name:      "month without zero padding",
			req:       MonthlyReportRequest{UserID: validUserID, Month: "2026-3"},
			wantField: "month",
		},
		{
			name:      "month is not a date",
			req:       MonthlyReportRequest{UserID: validUserID, Month: "march"},
			wantField: "month",
		},
		{
			name:      "month out of range",
			req:       MonthlyReportRequest{UserID: validUserID, Month: "2026-13"},
			wantField: "month",
		},
		{
			name:      "empty month",
			req:       MonthlyReportRequest{UserID: validUserID, Month: ""},
			wantField: "month",
		},
		{
			name:      "invalid user id",
			req:       MonthlyReportRequest{UserID: "not-a-uuid", Month: "2026-03"},
			wantField: "user_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}
