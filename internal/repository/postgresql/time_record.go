package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
)

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

const timeRecordSelectColumns = `
	tr.id, tr.user_id, tr.date, tr.entry1, tr.exit1, tr.entry2, tr.exit2,
	tr.total_hours, tr.is_adjusted, tr.created_at, tr.updated_at,
	u.name AS user_name
`

func scanTimeRecord(row pgx.Row) (timerecord.TimeRecord, error) {
	var record timerecord.TimeRecord
	err := row.Scan(
		&record.ID, &record.UserID, &record.Date,
		&record.Entry1, &record.Exit1, &record.Entry2, &record.Exit2,
		&record.TotalHours, &record.IsAdjusted, &record.CreatedAt, &record.UpdatedAt,
		&record.UserName,
	)
	return record, err
}

// Create implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO time_records (
			id, user_id, date, entry1, exit1, entry2, exit2, total_hours, is_adjusted
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Date,
		record.Entry1,
		record.Exit1,
		record.Entry2,
		record.Exit2,
		record.TotalHours,
		record.IsAdjusted,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return record, nil
}

// GetByID implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordSelectColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.id = $1
	`

	record, err := scanTimeRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to get time record: %w", err)
	}

	return record, nil
}

// GetByUserAndDate implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordSelectColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.user_id = $1 AND tr.date = $2
		LIMIT 1
	`

	record, err := scanTimeRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get time record by date: %w", err)
	}

	return &record, nil
}

// ListForUser implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) ListForUser(ctx context.Context, userID string, startDate string, endDate string) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordSelectColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.user_id = $1 AND tr.date >= $2 AND tr.date <= $3
		ORDER BY tr.date ASC
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

// ListForDate implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) ListForDate(ctx context.Context, date string, departmentID *string) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordSelectColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.date = $1
	`
	args := []any{date}
	if departmentID != nil {
		query += " AND u.department_id = $2"
		args = append(args, *departmentID)
	}
	query += " ORDER BY u.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records by date: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

func collectTimeRecords(rows pgx.Rows) ([]timerecord.TimeRecord, error) {
	var records []timerecord.TimeRecord
	for rows.Next() {
		record, err := scanTimeRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Update implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) Update(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET entry1 = $1, exit1 = $2, entry2 = $3, exit2 = $4,
			total_hours = $5, is_adjusted = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		record.Entry1,
		record.Exit1,
		record.Entry2,
		record.Exit2,
		record.TotalHours,
		record.IsAdjusted,
		record.ID,
	)
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to update time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
	}

	return r.GetByID(ctx, record.ID)
}
