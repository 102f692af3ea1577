package hourbank

import (
	"fmt"
	"math"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
)

// Summary is the hour bank for one user over one period, in decimal hours.
type Summary struct {
	ExpectedHours float64
	WorkedHours   float64
	Balance       float64
}

// ParseDay parses a YYYY-MM-DD date at noon UTC so that arithmetic on the
// value never crosses a day boundary regardless of timezone.
func ParseDay(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", date, err)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// WorkingDays counts Monday through Friday between start and end inclusive,
// skipping any weekday present in holidayDates (YYYY-MM-DD keys).
func WorkingDays(start, end time.Time, holidayDates map[string]bool) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if holidayDates[d.Format("2006-01-02")] {
			continue
		}
		count++
	}

	return count
}

// Compute builds the hour bank for the period [start, end] (YYYY-MM-DD,
// inclusive). Worked hours sum the stored totals of the user's time records
// plus one daily quota per approved hour-crediting justification on a day
// without a record. Expected hours count weekdays in the period, minus days
// excused by an approved holiday justification, times the daily quota.
func Compute(dailyWorkHours float64, records []timerecord.TimeRecord, approved []justification.Justification, start, end string) (Summary, error) {
	startDay, err := ParseDay(start)
	if err != nil {
		return Summary{}, err
	}

	endDay, err := ParseDay(end)
	if err != nil {
		return Summary{}, err
	}

	if startDay.After(endDay) {
		return Summary{}, fmt.Errorf("invalid period: start %s is after end %s", start, end)
	}

	recordDates := make(map[string]bool, len(records))
	worked := 0.0
	for _, record := range records {
		recordDates[record.Date] = true
		if record.TotalHours != nil {
			worked += *record.TotalHours
		}
	}

	holidayDates := make(map[string]bool)
	for _, j := range approved {
		if j.Type == justification.TypeHoliday {
			holidayDates[j.Date] = true
		}
		if j.AbonaHoras && !recordDates[j.Date] {
			worked += dailyWorkHours
		}
	}

	expected := float64(WorkingDays(startDay, endDay, holidayDates)) * dailyWorkHours

	return Summary{
		ExpectedHours: expected,
		WorkedHours:   worked,
		Balance:       worked - expected,
	}, nil
}

// DecimalToHHMM formats decimal hours as [-]HH:MM, e.g. 8.5 as "08:30" and
// -1.25 as "-01:15".
func DecimalToHHMM(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
	}

	abs := math.Abs(hours)
	h := int(abs)
	m := int(math.Round((abs - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}

	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
