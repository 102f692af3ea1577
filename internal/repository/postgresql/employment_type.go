package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
)

type employmentTypeRepository struct {
	db *database.DB
}

func NewEmploymentTypeRepository(db *database.DB) employmenttype.EmploymentTypeRepository {
	return &employmentTypeRepository{db: db}
}

// Create implements employmenttype.EmploymentTypeRepository.
func (r *employmentTypeRepository) Create(ctx context.Context, e employmenttype.EmploymentType) (employmenttype.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	e.ID = uuid.Must(uuid.NewV7()).String()
	e.IsActive = true

	query := `
		INSERT INTO employment_types (id, name, description, daily_work_hours, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, e.ID, e.Name, e.Description, e.DailyWorkHours, e.IsActive).Scan(&e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employmenttype.EmploymentType{}, employmenttype.ErrEmploymentTypeNameExists
		}
		return employmenttype.EmploymentType{}, fmt.Errorf("failed to create employment type: %w", err)
	}

	return e, nil
}

// GetByID implements employmenttype.EmploymentTypeRepository.
func (r *employmentTypeRepository) GetByID(ctx context.Context, id string) (employmenttype.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, daily_work_hours, is_active, created_at
		FROM employment_types
		WHERE id = $1
	`

	var e employmenttype.EmploymentType
	err := q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Description, &e.DailyWorkHours, &e.IsActive, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employmenttype.EmploymentType{}, employmenttype.ErrEmploymentTypeNotFound
		}
		return employmenttype.EmploymentType{}, fmt.Errorf("failed to get employment type: %w", err)
	}

	return e, nil
}

// List implements employmenttype.EmploymentTypeRepository.
func (r *employmentTypeRepository) List(ctx context.Context, includeInactive bool) ([]employmenttype.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, daily_work_hours, is_active, created_at
		FROM employment_types
	`
	if !includeInactive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment types: %w", err)
	}
	defer rows.Close()

	var types []employmenttype.EmploymentType
	for rows.Next() {
		var e employmenttype.EmploymentType
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.DailyWorkHours, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employment type: %w", err)
		}
		types = append(types, e)
	}

	return types, rows.Err()
}

// Update implements employmenttype.EmploymentTypeRepository.
func (r *employmentTypeRepository) Update(ctx context.Context, req employmenttype.UpdateEmploymentTypeRequest) (employmenttype.EmploymentType, error) {
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
	if req.DailyWorkHours != nil {
		args = append(args, *req.DailyWorkHours)
		set = append(set, fmt.Sprintf("daily_work_hours = $%d", len(args)))
	}

	if len(set) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE employment_types SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return employmenttype.EmploymentType{}, employmenttype.ErrEmploymentTypeNameExists
		}
		return employmenttype.EmploymentType{}, fmt.Errorf("failed to update employment type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employmenttype.EmploymentType{}, employmenttype.ErrEmploymentTypeNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// ToggleStatus implements employmenttype.EmploymentTypeRepository.
func (r *employmentTypeRepository) ToggleStatus(ctx context.Context, id string, active bool) (employmenttype.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employment_types SET is_active = $1 WHERE id = $2`

	tag, err := q.Exec(ctx, query, active, id)
	if err != nil {
		return employmenttype.EmploymentType{}, fmt.Errorf("failed to toggle employment type status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employmenttype.EmploymentType{}, employmenttype.ErrEmploymentTypeNotFound
	}

	return r.GetByID(ctx, id)
}
