package hourbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestCompute_EmptyPeriod(t *testing.T) {
	// 2026-03-02 to 2026-03-06 is Monday through Friday.
	summary, err := Compute(8, nil, nil, "2026-03-02", "2026-03-06")
	require.NoError(t, err)

	assert.Equal(t, 40.0, summary.ExpectedHours)
	assert.Equal(t, 0.0, summary.WorkedHours)
	assert.Equal(t, -40.0, summary.Balance)
}

func TestCompute_WeekendOnlyRange(t *testing.T) {
	// 2026-03-07 and 2026-03-08 are Saturday and Sunday.
	summary, err := Compute(8, nil, nil, "2026-03-07", "2026-03-08")
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.ExpectedHours)
	assert.Equal(t, 0.0, summary.WorkedHours)
	assert.Equal(t, 0.0, summary.Balance)
}

func TestCompute_StartAfterEnd(t *testing.T) {
	_, err := Compute(8, nil, nil, "2026-03-06", "2026-03-02")
	assert.Error(t, err)
}

func TestCompute_InvalidDate(t *testing.T) {
	_, err := Compute(8, nil, nil, "not-a-date", "2026-03-06")
	assert.Error(t, err)
}

func TestCompute_SumsStoredTotals(t *testing.T) {
	records := []timerecord.TimeRecord{
		{Date: "2026-03-02", TotalHours: floatPtr(8)},
		{Date: "2026-03-03", TotalHours: floatPtr(7.25)},
		{Date: "2026-03-04", TotalHours: nil}, // open day, nothing to add
	}

	summary, err := Compute(8, records, nil, "2026-03-02", "2026-03-06")
	require.NoError(t, err)

	assert.Equal(t, 15.25, summary.WorkedHours)
	assert.Equal(t, 40.0, summary.ExpectedHours)
	assert.Equal(t, -24.75, summary.Balance)
}

func TestCompute_HolidayExcludesWeekday(t *testing.T) {
	// Approved holiday on Tuesday 2026-03-03 reduces the working day count.
	approved := []justification.Justification{
		{Date: "2026-03-03", Type: justification.TypeHoliday, Status: justification.StatusApproved},
	}

	summary, err := Compute(8, nil, approved, "2026-03-02", "2026-03-06")
	require.NoError(t, err)

	assert.Equal(t, 32.0, summary.ExpectedHours)
	assert.Equal(t, -32.0, summary.Balance)
}

func TestCompute_AbonaCreditsDayWithoutRecord(t *testing.T) {
	approved := []justification.Justification{
		{Date: "2026-03-05", Type: justification.TypeVacation, AbonaHoras: true},
	}

	summary, err := Compute(8, nil, approved, "2026-03-02", "2026-03-06")
	require.NoError(t, err)

	assert.Equal(t, 8.0, summary.WorkedHours)
	assert.Equal(t, 40.0, summary.ExpectedHours)
	assert.Equal(t, -32.0, summary.Balance)
}

func TestCompute_NoDoubleCreditWhenRecordExists(t *testing.T) {
	records := []timerecord.TimeRecord{
		{Date: "2026-03-05", TotalHours: floatPtr(4)},
	}
	approved := []justification.Justification{
		{Date: "2026-03-05", Type: justification.TypeHealthProblems, AbonaHoras: true},
	}

	summary, err := Compute(8, records, approved, "2026-03-02", "2026-03-06")
	require.NoError(t, err)

	// The record wins; the justification does not add the daily quota on top.
	assert.Equal(t, 4.0, summary.WorkedHours)
}

func TestCompute_FullWeekScenario(t *testing.T) {
	// Monday 2026-03-02 through Sunday 2026-03-08, 8h daily quota.
	// Wednesday has a 7.5h record, Thursday an approved vacation.
	records := []timerecord.TimeRecord{
		{Date: "2026-03-04", TotalHours: floatPtr(7.5)},
	}
	approved := []justification.Justification{
		{Date: "2026-03-05", Type: justification.TypeVacation, AbonaHoras: true},
	}

	summary, err := Compute(8, records, approved, "2026-03-02", "2026-03-08")
	require.NoError(t, err)

	assert.Equal(t, 15.5, summary.WorkedHours)
	assert.Equal(t, 40.0, summary.ExpectedHours)
	assert.Equal(t, -24.5, summary.Balance)
}

func TestWorkingDays(t *testing.T) {
	start, err := ParseDay("2026-03-01") // Sunday
	require.NoError(t, err)
	end, err := ParseDay("2026-03-31") // Tuesday
	require.NoError(t, err)

	assert.Equal(t, 22, WorkingDays(start, end, nil))

	holidays := map[string]bool{"2026-03-03": true} // Tuesday
	assert.Equal(t, 21, WorkingDays(start, end, holidays))

	// Holidays on weekends change nothing.
	holidays = map[string]bool{"2026-03-07": true}
	assert.Equal(t, 22, WorkingDays(start, end, holidays))
}

func TestDecimalToHHMM(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{8.5, "08:30"},
		{-1.25, "-01:15"},
		{0, "00:00"},
		{7.999, "08:00"},
		{160, "160:00"},
		{-0.5, "-00:30"},
		{8.75, "08:45"},
	}

	for _, tt := range tests {
		got := DecimalToHHMM(tt.hours)
		if got != tt.want {
			t.Errorf("DecimalToHHMM(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
