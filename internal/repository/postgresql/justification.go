package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
)

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepository{db: db}
}

const justificationSelectColumns = `
	j.id, j.user_id, j.date, j.type, j.reason, j.record_to_adjust,
	j.abona_horas, j.status, j.approved_by, j.approved_at, j.created_at,
	u.name AS user_name, u.department_id
`

func scanJustification(row pgx.Row) (justification.Justification, error) {
	var j justification.Justification
	err := row.Scan(
		&j.ID, &j.UserID, &j.Date, &j.Type, &j.Reason, &j.RecordToAdjust,
		&j.AbonaHoras, &j.Status, &j.ApprovedBy, &j.ApprovedAt, &j.CreatedAt,
		&j.UserName, &j.DepartmentID,
	)
	return j, err
}

// Create implements justification.JustificationRepository.
func (r *justificationRepository) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	j.ID = uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO justifications (
			id, user_id, date, type, reason, record_to_adjust,
			abona_horas, status, approved_by, approved_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		j.ID,
		j.UserID,
		j.Date,
		j.Type,
		j.Reason,
		j.RecordToAdjust,
		j.AbonaHoras,
		j.Status,
		j.ApprovedBy,
		j.ApprovedAt,
	).Scan(&j.CreatedAt)

	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}

	return r.GetByID(ctx, j.ID)
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepository) GetByID(ctx context.Context, id string) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationSelectColumns + `
		FROM justifications j
		JOIN users u ON u.id = j.user_id
		WHERE j.id = $1
	`

	j, err := scanJustification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Justification{}, justification.ErrJustificationNotFound
		}
		return justification.Justification{}, fmt.Errorf("failed to get justification: %w", err)
	}

	return j, nil
}

// ListForUser implements justification.JustificationRepository.
func (r *justificationRepository) ListForUser(ctx context.Context, userID string) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationSelectColumns + `
		FROM justifications j
		JOIN users u ON u.id = j.user_id
		WHERE j.user_id = $1
		ORDER BY j.date DESC, j.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}
	defer rows.Close()

	return collectJustifications(rows)
}

// ListForUserByDateRange implements justification.JustificationRepository.
func (r *justificationRepository) ListForUserByDateRange(ctx context.Context, userID string, startDate string, endDate string, approvedOnly bool) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationSelectColumns + `
		FROM justifications j
		JOIN users u ON u.id = j.user_id
		WHERE j.user_id = $1 AND j.date >= $2 AND j.date <= $3
	`
	if approvedOnly {
		query += " AND j.status = 'approved'"
	}
	query += " ORDER BY j.date ASC, j.created_at ASC"

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications by range: %w", err)
	}
	defer rows.Close()

	return collectJustifications(rows)
}

// ListPending implements justification.JustificationRepository.
func (r *justificationRepository) ListPending(ctx context.Context, departmentID *string) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationSelectColumns + `
		FROM justifications j
		JOIN users u ON u.id = j.user_id
		WHERE j.status = 'pending'
	`
	args := []any{}
	if departmentID != nil {
		query += " AND u.department_id = $1"
		args = append(args, *departmentID)
	}
	query += " ORDER BY j.created_at ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending justifications: %w", err)
	}
	defer rows.Close()

	return collectJustifications(rows)
}

func collectJustifications(rows pgx.Rows) ([]justification.Justification, error) {
	var justifications []justification.Justification
	for rows.Next() {
		j, err := scanJustification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		justifications = append(justifications, j)
	}
	return justifications, rows.Err()
}

// Decide implements justification.JustificationRepository. Only pending
// entries can be decided; a second decision affects zero rows.
func (r *justificationRepository) Decide(ctx context.Context, id string, approverID string, approved bool) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	status := justification.StatusRejected
	if approved {
		status = justification.StatusApproved
	}

	query := `
		UPDATE justifications
		SET status = $1, approved_by = $2, approved_at = NOW()
		WHERE id = $3 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, approverID, id)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to decide justification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return justification.Justification{}, getErr
		}
		return justification.Justification{}, justification.ErrAlreadyProcessed
	}

	return r.GetByID(ctx, id)
}
