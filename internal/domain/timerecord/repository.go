package timerecord

import "context"

// TimeRecordRepository defines data access methods for punch cards.
// At most one record exists per (user, date).
type TimeRecordRepository interface {
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	GetByID(ctx context.Context, id string) (TimeRecord, error)

	// GetByUserAndDate returns nil when the user has no card for the date.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*TimeRecord, error)

	// ListForUser retrieves records in [startDate, endDate] inclusive,
	// ascending by date.
	ListForUser(ctx context.Context, userID string, startDate string, endDate string) ([]TimeRecord, error)

	// ListForDate retrieves every record of a calendar date, optionally
	// restricted to a department (manager view).
	ListForDate(ctx context.Context, date string, departmentID *string) ([]TimeRecord, error)

	Update(ctx context.Context, record TimeRecord) (TimeRecord, error)
}
