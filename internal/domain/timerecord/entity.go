package timerecord

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinPunchGapMinutes is the minimum interval between two consecutive punches.
const MinPunchGapMinutes = 60

// TimeRecord is the single punch card for one (user, calendar date).
// The four clock fields fill strictly in order entry1 -> exit1 -> entry2 -> exit2.
type TimeRecord struct {
	ID         string
	UserID     string
	Date       string // YYYY-MM-DD
	Entry1     *string
	Exit1      *string
	Entry2     *string
	Exit2      *string
	TotalHours *float64
	IsAdjusted bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joins
	UserName *string
}

// MinutesSinceMidnight converts an HH:MM clock string to minutes.
func MinutesSinceMidnight(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", hhmm)
	}
	return h*60 + m, nil
}

// LastPunch returns the most recently filled clock field, or nil when the
// card is empty.
func (r *TimeRecord) LastPunch() *string {
	switch {
	case r.Exit2 != nil:
		return r.Exit2
	case r.Entry2 != nil:
		return r.Entry2
	case r.Exit1 != nil:
		return r.Exit1
	default:
		return r.Entry1
	}
}

// ApplyPunch fills the next free slot with now (HH:MM). It enforces the
// minimum gap between punches and rejects a fifth punch.
func (r *TimeRecord) ApplyPunch(now string) error {
	nowMinutes, err := MinutesSinceMidnight(now)
	if err != nil {
		return err
	}

	if last := r.LastPunch(); last != nil {
		lastMinutes, err := MinutesSinceMidnight(*last)
		if err != nil {
			return err
		}
		if nowMinutes-lastMinutes < MinPunchGapMinutes {
			return ErrPunchTooSoon
		}
	}

	switch {
	case r.Entry1 == nil:
		r.Entry1 = &now
	case r.Exit1 == nil:
		r.Exit1 = &now
	case r.Entry2 == nil:
		r.Entry2 = &now
	case r.Exit2 == nil:
		r.Exit2 = &now
	default:
		return ErrAllSlotsFilled
	}

	return r.RecalculateTotal()
}

// RecalculateTotal recomputes TotalHours from the completed punch pairs.
// Each pair contributes (exit - entry) in hours; an open pair contributes
// nothing. Called on every exit punch and on manager adjustments so the
// stored value always matches the clock fields.
func (r *TimeRecord) RecalculateTotal() error {
	totalMinutes := 0
	hasPair := false

	for _, pair := range [][2]*string{{r.Entry1, r.Exit1}, {r.Entry2, r.Exit2}} {
		entry, exit := pair[0], pair[1]
		if entry == nil || exit == nil {
			continue
		}
		entryMinutes, err := MinutesSinceMidnight(*entry)
		if err != nil {
			return err
		}
		exitMinutes, err := MinutesSinceMidnight(*exit)
		if err != nil {
			return err
		}
		if exitMinutes < entryMinutes {
			return ErrExitBeforeEntry
		}
		totalMinutes += exitMinutes - entryMinutes
		hasPair = true
	}

	if !hasPair {
		r.TotalHours = nil
		return nil
	}

	total := float64(totalMinutes) / 60.0
	r.TotalHours = &total
	return nil
}
