package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/master/justificationtype"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
)

type justificationTypeRepository struct {
	db *database.DB
}

func NewJustificationTypeRepository(db *database.DB) justificationtype.JustificationTypeRepository {
	return &justificationTypeRepository{db: db}
}

// Create implements justificationtype.JustificationTypeRepository.
func (r *justificationTypeRepository) Create(ctx context.Context, t justificationtype.JustificationType) (justificationtype.JustificationType, error) {
	q := GetQuerier(ctx, r.db)

	t.ID = uuid.Must(uuid.NewV7()).String()
	t.IsActive = true

	query := `
		INSERT INTO justification_types (
			id, name, description, requires_documentation, requires_record_selection, is_active
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.Name, t.Description, t.RequiresDocumentation, t.RequiresRecordSelection, t.IsActive,
	).Scan(&t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return justificationtype.JustificationType{}, justificationtype.ErrJustificationTypeNameExists
		}
		return justificationtype.JustificationType{}, fmt.Errorf("failed to create justification type: %w", err)
	}

	return t, nil
}

// GetByID implements justificationtype.JustificationTypeRepository.
func (r *justificationTypeRepository) GetByID(ctx context.Context, id string) (justificationtype.JustificationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, requires_documentation, requires_record_selection, is_active, created_at
		FROM justification_types
		WHERE id = $1
	`

	var t justificationtype.JustificationType
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.RequiresDocumentation, &t.RequiresRecordSelection, &t.IsActive, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justificationtype.JustificationType{}, justificationtype.ErrJustificationTypeNotFound
		}
		return justificationtype.JustificationType{}, fmt.Errorf("failed to get justification type: %w", err)
	}

	return t, nil
}

// List implements justificationtype.JustificationTypeRepository.
func (r *justificationTypeRepository) List(ctx context.Context, includeInactive bool) ([]justificationtype.JustificationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, requires_documentation, requires_record_selection, is_active, created_at
		FROM justification_types
	`
	if !includeInactive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list justification types: %w", err)
	}
	defer rows.Close()

	var types []justificationtype.JustificationType
	for rows.Next() {
		var t justificationtype.JustificationType
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.RequiresDocumentation, &t.RequiresRecordSelection, &t.IsActive, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan justification type: %w", err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// Update implements justificationtype.JustificationTypeRepository.
func (r *justificationTypeRepository) Update(ctx context.Context, req justificationtype.UpdateJustificationTypeRequest) (justificationtype.JustificationType, error) {
	q := GetQuerier(ctx, r.db)

	set := []string{}
	args := []any{}

	if req.Name != nil {
		args = append(args, *req.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if req.RequiresDocumentation != nil {
		args = append(args, *req.RequiresDocumentation)
		set = append(set, fmt.Sprintf("requires_documentation = $%d", len(args)))
	}
	if req.RequiresRecordSelection != nil {
		args = append(args, *req.RequiresRecordSelection)
		set = append(set, fmt.Sprintf("requires_record_selection = $%d", len(args)))
	}

	if len(set) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE justification_types SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return justificationtype.JustificationType{}, justificationtype.ErrJustificationTypeNameExists
		}
		return justificationtype.JustificationType{}, fmt.Errorf("failed to update justification type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justificationtype.JustificationType{}, justificationtype.ErrJustificationTypeNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// ToggleStatus implements justificationtype.JustificationTypeRepository.
func (r *justificationTypeRepository) ToggleStatus(ctx context.Context, id string, active bool) (justificationtype.JustificationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE justification_types SET is_active = $1 WHERE id = $2`

	tag, err := q.Exec(ctx, query, active, id)
	if err != nil {
		return justificationtype.JustificationType{}, fmt.Errorf("failed to toggle justification type status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justificationtype.JustificationType{}, justificationtype.ErrJustificationTypeNotFound
	}

	return r.GetByID(ctx, id)
}
