package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/passwordreset"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
)

type passwordResetRepository struct {
	db *database.DB
}

func NewPasswordResetRepository(db *database.DB) passwordreset.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

const passwordResetSelectColumns = `
	pr.id, pr.user_id, pr.cpf, pr.requested_at, pr.status, pr.resolved_by, pr.resolved_at,
	u.name AS user_name
`

func scanPasswordReset(row pgx.Row) (passwordreset.Request, error) {
	var request passwordreset.Request
	err := row.Scan(
		&request.ID, &request.UserID, &request.CPF, &request.RequestedAt,
		&request.Status, &request.ResolvedBy, &request.ResolvedAt,
		&request.UserName,
	)
	return request, err
}

// Create implements passwordreset.PasswordResetRepository.
func (r *passwordResetRepository) Create(ctx context.Context, request passwordreset.Request) (passwordreset.Request, error) {
	q := GetQuerier(ctx, r.db)

	request.ID = uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO password_reset_requests (id, user_id, cpf, status)
		VALUES ($1, $2, $3, $4)
		RETURNING requested_at
	`

	err := q.QueryRow(ctx, query, request.ID, request.UserID, request.CPF, request.Status).Scan(&request.RequestedAt)
	if err != nil {
		return passwordreset.Request{}, fmt.Errorf("failed to create password reset request: %w", err)
	}

	return request, nil
}

// GetByID implements passwordreset.PasswordResetRepository.
func (r *passwordResetRepository) GetByID(ctx context.Context, id string) (passwordreset.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + passwordResetSelectColumns + `
		FROM password_reset_requests pr
		JOIN users u ON u.id = pr.user_id
		WHERE pr.id = $1
	`

	request, err := scanPasswordReset(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return passwordreset.Request{}, passwordreset.ErrRequestNotFound
		}
		return passwordreset.Request{}, fmt.Errorf("failed to get password reset request: %w", err)
	}

	return request, nil
}

// ListPending implements passwordreset.PasswordResetRepository.
func (r *passwordResetRepository) ListPending(ctx context.Context) ([]passwordreset.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + passwordResetSelectColumns + `
		FROM password_reset_requests pr
		JOIN users u ON u.id = pr.user_id
		WHERE pr.status = 'pending'
		ORDER BY pr.requested_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list password reset requests: %w", err)
	}
	defer rows.Close()

	var requests []passwordreset.Request
	for rows.Next() {
		request, err := scanPasswordReset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan password reset request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// Resolve implements passwordreset.PasswordResetRepository. Only pending
// requests can be resolved.
func (r *passwordResetRepository) Resolve(ctx context.Context, id string, resolverID string) (passwordreset.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE password_reset_requests
		SET status = 'resolved', resolved_by = $1, resolved_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, resolverID, id)
	if err != nil {
		return passwordreset.Request{}, fmt.Errorf("failed to resolve password reset request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return passwordreset.Request{}, getErr
		}
		return passwordreset.Request{}, passwordreset.ErrAlreadyResolved
	}

	return r.GetByID(ctx, id)
}
