package timerecord

import "context"

// TimeRecordService operates on the punch card of the authenticated user,
// except for the manager operations which act on other users' cards.
type TimeRecordService interface {
	// Punch fills the next free slot of today's card with the current clock
	// time, creating the card on the first punch of the day.
	Punch(ctx context.Context) (TimeRecordResponse, error)

	// GetToday returns today's card, or nil when no punch happened yet.
	GetToday(ctx context.Context) (*TimeRecordResponse, error)

	ListMine(ctx context.Context, filter ListTimeRecordsFilter) ([]TimeRecordResponse, error)

	// ListForDate is the manager view of one calendar date, scoped to the
	// manager's department.
	ListForDate(ctx context.Context, date string) ([]TimeRecordResponse, error)

	// Adjust rewrites the clock slots of a past card and marks it adjusted.
	Adjust(ctx context.Context, req AdjustTimeRecordRequest) (TimeRecordResponse, error)
}
