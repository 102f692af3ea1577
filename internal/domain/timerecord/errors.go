package timerecord

import "errors"

// Time record domain errors
var (
	// Punch errors
	ErrPunchTooSoon    = errors.New("at least one hour must pass between punches")
	ErrAllSlotsFilled  = errors.New("all time slots for today are already filled")
	ErrExitBeforeEntry = errors.New("exit time must not be earlier than entry time")

	// Adjustment errors
	ErrRecordNotFound = errors.New("time record not found")
	ErrAdjustSameDay  = errors.New("records of the current day cannot be adjusted")
	ErrAdjustTooOld   = errors.New("records older than the previous month cannot be adjusted")
)
