package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
)

type functionRepository struct {
	db *database.DB
}

func NewFunctionRepository(db *database.DB) function.FunctionRepository {
	return &functionRepository{db: db}
}

// Create implements function.FunctionRepository.
func (r *functionRepository) Create(ctx context.Context, f function.Function) (function.Function, error) {
	q := GetQuerier(ctx, r.db)

	f.ID = uuid.Must(uuid.NewV7()).String()
	f.IsActive = true

	query := `
		INSERT INTO functions (id, name, description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, f.ID, f.Name, f.Description, f.IsActive).Scan(&f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return function.Function{}, function.ErrFunctionNameExists
		}
		return function.Function{}, fmt.Errorf("failed to create function: %w", err)
	}

	return f, nil
}

// GetByID implements function.FunctionRepository.
func (r *functionRepository) GetByID(ctx context.Context, id string) (function.Function, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, is_active, created_at
		FROM functions
		WHERE id = $1
	`

	var f function.Function
	err := q.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Description, &f.IsActive, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return function.Function{}, function.ErrFunctionNotFound
		}
		return function.Function{}, fmt.Errorf("failed to get function: %w", err)
	}

	return f, nil
}

// List implements function.FunctionRepository.
func (r *functionRepository) List(ctx context.Context, includeInactive bool) ([]function.Function, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, is_active, created_at
		FROM functions
	`
	if !includeInactive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list functions: %w", err)
	}
	defer rows.Close()

	var functions []function.Function
	for rows.Next() {
		var f function.Function
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.IsActive, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan function: %w", err)
		}
		functions = append(functions, f)
	}

	return functions, rows.Err()
}

// Update implements function.FunctionRepository.
func (r *functionRepository) Update(ctx context.Context, req function.UpdateFunctionRequest) (function.Function, error) {
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

	if len(set) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE functions SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return function.Function{}, function.ErrFunctionNameExists
		}
		return function.Function{}, fmt.Errorf("failed to update function: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return function.Function{}, function.ErrFunctionNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// ToggleStatus implements function.FunctionRepository.
func (r *functionRepository) ToggleStatus(ctx context.Context, id string, active bool) (function.Function, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE functions SET is_active = $1 WHERE id = $2`

	tag, err := q.Exec(ctx, query, active, id)
	if err != nil {
		return function.Function{}, fmt.Errorf("failed to toggle function status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return function.Function{}, function.ErrFunctionNotFound
	}

	return r.GetByID(ctx, id)
}
