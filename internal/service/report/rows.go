package report

import (
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
)

type RowKind int

const (
	RowRecord RowKind = iota
	RowJustification
	RowWeekend
	RowNoRecord
)

// DayRow is one line of the attendance report. Exactly one source fills it:
// a time record beats an approved justification, which beats the weekend
// marker, which beats the empty placeholder.
type DayRow struct {
	Date          time.Time
	Kind          RowKind
	Record        *timerecord.TimeRecord
	Justification *justification.Justification
}

// Portuguese labels shown on the report for each justification type.
var typeLabels = map[justification.Type]string{
	justification.TypeAbsence:          "Falta",
	justification.TypeLate:             "Atraso",
	justification.TypeVacation:         "Férias",
	justification.TypeHoliday:          "Feriado",
	justification.TypeHealthProblems:   "Atestado Médico",
	justification.TypeFamilyIssue:      "Licença Familiar",
	justification.TypeExternalMeetings: "Reunião Externa",
	justification.TypeWorkFromHome:     "Trabalho remoto",
	justification.TypeTraining:         "Treinamento",
	justification.TypeEarlyLeave:       "Saída antecipada",
	justification.TypeError:            "Erro no registro",
	justification.TypeOther:            "Outros",
}

// JustificationLabel renders the report text for an approved justification,
// appending the credit marker when the day's hours are excused.
func JustificationLabel(j justification.Justification) string {
	label, ok := typeLabels[j.Type]
	if !ok {
		label = typeLabels[justification.TypeOther]
	}
	if j.AbonaHoras {
		label += " (Abonado)"
	}
	return label
}

// IsHolidayRow reports whether the row marks a holiday, which the report
// highlights differently from other justifications.
func (r DayRow) IsHolidayRow() bool {
	return r.Kind == RowJustification && r.Justification.Type == justification.TypeHoliday
}

// BuildDailyRows resolves one row per day of [start, end] inclusive. When a
// day carries more than one record or justification, the first one in input
// order wins.
func BuildDailyRows(start, end time.Time, records []timerecord.TimeRecord, approved []justification.Justification) []DayRow {
	recordsByDate := make(map[string]*timerecord.TimeRecord, len(records))
	for i := range records {
		date := records[i].Date
		if _, exists := recordsByDate[date]; !exists {
			recordsByDate[date] = &records[i]
		}
	}

	justificationsByDate := make(map[string]*justification.Justification, len(approved))
	for i := range approved {
		date := approved[i].Date
		if _, exists := justificationsByDate[date]; !exists {
			justificationsByDate[date] = &approved[i]
		}
	}

	var rows []DayRow
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		row := DayRow{Date: d}

		switch {
		case recordsByDate[date] != nil:
			row.Kind = RowRecord
			row.Record = recordsByDate[date]
		case justificationsByDate[date] != nil:
			row.Kind = RowJustification
			row.Justification = justificationsByDate[date]
		case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
			row.Kind = RowWeekend
		default:
			row.Kind = RowNoRecord
		}

		rows = append(rows, row)
	}

	return rows
}

// clockOrPlaceholder renders one punch cell, "--:--" when empty.
func clockOrPlaceholder(v *string) string {
	if v == nil {
		return "--:--"
	}
	return *v
}
