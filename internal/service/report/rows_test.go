package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
}

func TestBuildDailyRows_Priority(t *testing.T) {
	// Monday 2026-03-02 through Sunday 2026-03-08.
	records := []timerecord.TimeRecord{
		{Date: "2026-03-02"},
	}
	approved := []justification.Justification{
		{Date: "2026-03-02", Type: justification.TypeLate},      // loses to the record
		{Date: "2026-03-03", Type: justification.TypeVacation},  // justification row
		{Date: "2026-03-07", Type: justification.TypeAbsence},   // beats the weekend marker
	}

	rows := BuildDailyRows(day(t, "2026-03-02"), day(t, "2026-03-08"), records, approved)
	require.Len(t, rows, 7)

	assert.Equal(t, RowRecord, rows[0].Kind)
	assert.Equal(t, RowJustification, rows[1].Kind)
	assert.Equal(t, RowNoRecord, rows[2].Kind) // Wednesday, nothing filed
	assert.Equal(t, RowNoRecord, rows[3].Kind)
	assert.Equal(t, RowNoRecord, rows[4].Kind)
	assert.Equal(t, RowJustification, rows[5].Kind) // Saturday with a justification
	assert.Equal(t, RowWeekend, rows[6].Kind)       // Sunday
}

func TestBuildDailyRows_MondayWithoutRecordIsNotWeekend(t *testing.T) {
	rows := BuildDailyRows(day(t, "2026-03-02"), day(t, "2026-03-02"), nil, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, RowNoRecord, rows[0].Kind)
}

func TestBuildDailyRows_FirstEntryWinsOnDuplicates(t *testing.T) {
	first := "08:00"
	second := "09:00"
	records := []timerecord.TimeRecord{
		{Date: "2026-03-02", Entry1: &first},
		{Date: "2026-03-02", Entry1: &second},
	}

	rows := BuildDailyRows(day(t, "2026-03-02"), day(t, "2026-03-02"), records, nil)
	require.Len(t, rows, 1)
	require.Equal(t, RowRecord, rows[0].Kind)
	assert.Equal(t, "08:00", *rows[0].Record.Entry1)
}

func TestJustificationLabel(t *testing.T) {
	tests := []struct {
		name string
		j    justification.Justification
		want string
	}{
		{"vacation with credit", justification.Justification{Type: justification.TypeVacation, AbonaHoras: true}, "Férias (Abonado)"},
		{"plain absence", justification.Justification{Type: justification.TypeAbsence}, "Falta"},
		{"holiday", justification.Justification{Type: justification.TypeHoliday}, "Feriado"},
		{"health with credit", justification.Justification{Type: justification.TypeHealthProblems, AbonaHoras: true}, "Atestado Médico (Abonado)"},
		{"unknown type falls back", justification.Justification{Type: justification.Type("whatever")}, "Outros"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JustificationLabel(tt.j))
		})
	}
}

func TestIsHolidayRow(t *testing.T) {
	holiday := justification.Justification{Type: justification.TypeHoliday}
	vacation := justification.Justification{Type: justification.TypeVacation}

	assert.True(t, DayRow{Kind: RowJustification, Justification: &holiday}.IsHolidayRow())
	assert.False(t, DayRow{Kind: RowJustification, Justification: &vacation}.IsHolidayRow())
	assert.False(t, DayRow{Kind: RowWeekend}.IsHolidayRow())
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		month     string
		wantStart string
		wantEnd   string
	}{
		{"2026-03", "2026-02-21", "2026-03-20"},
		{"2026-01", "2025-12-21", "2026-01-20"},
		{"2025-12", "2025-11-21", "2025-12-20"},
	}

	for _, tt := range tests {
		start, end, err := Period(tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.wantStart, start)
		assert.Equal(t, tt.wantEnd, end)
	}

	_, _, err := Period("march")
	assert.Error(t, err)
}
