package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userSelectColumns = `
	u.id, u.cpf, u.username, u.password_hash, u.name, u.phone, u.email,
	u.role, u.status, u.department_id, u.function_id, u.employment_type_id,
	u.admission_date, u.dismissal_date, u.must_change_password,
	u.daily_work_hours, u.created_at, u.updated_at,
	d.name AS department_name, f.name AS function_name, et.name AS employment_type_name
`

const userSelectJoins = `
	FROM users u
	LEFT JOIN departments d ON d.id = u.department_id
	LEFT JOIN functions f ON f.id = u.function_id
	LEFT JOIN employment_types et ON et.id = u.employment_type_id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.CPF, &u.Username, &u.PasswordHash, &u.Name, &u.Phone, &u.Email,
		&u.Role, &u.Status, &u.DepartmentID, &u.FunctionID, &u.EmploymentTypeID,
		&u.AdmissionDate, &u.DismissalDate, &u.MustChangePassword,
		&u.DailyWorkHours, &u.CreatedAt, &u.UpdatedAt,
		&u.DepartmentName, &u.FunctionName, &u.EmploymentTypeName,
	)
	return u, err
}

// translateUserConstraint maps unique violations to domain errors.
func translateUserConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "cpf"):
			return user.ErrCPFExists
		case strings.Contains(pgErr.ConstraintName, "username"):
			return user.ErrUsernameExists
		}
	}
	return err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	newUser.ID = uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO users (
			id, cpf, username, password_hash, name, phone, email, role, status,
			department_id, function_id, employment_type_id, admission_date,
			must_change_password, daily_work_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.CPF,
		newUser.Username,
		newUser.PasswordHash,
		newUser.Name,
		newUser.Phone,
		newUser.Email,
		newUser.Role,
		newUser.Status,
		newUser.DepartmentID,
		newUser.FunctionID,
		newUser.EmploymentTypeID,
		newUser.AdmissionDate,
		newUser.MustChangePassword,
		newUser.DailyWorkHours,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", translateUserConstraint(err))
	}

	return r.GetByID(ctx, newUser.ID)
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getByField(ctx, "u.id", id)
}

// GetByCPF implements user.UserRepository.
func (r *userRepository) GetByCPF(ctx context.Context, cpf string) (user.User, error) {
	return r.getByField(ctx, "u.cpf", cpf)
}

// GetByUsername implements user.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getByField(ctx, "u.username", username)
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getByField(ctx, "u.email", email)
}

func (r *userRepository) getByField(ctx context.Context, field string, value string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + userSelectColumns + userSelectJoins + " WHERE " + field + " = $1 LIMIT 1"

	u, err := scanUser(q.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by %s: %w", field, err)
	}

	return u, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context, departmentID *string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + userSelectColumns + userSelectJoins
	args := []any{}
	if departmentID != nil {
		query += " WHERE u.department_id = $1"
		args = append(args, *departmentID)
	}
	query += " ORDER BY u.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update implements user.UserRepository. Only the fields present in the
// request are written.
func (r *userRepository) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	set := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.CPF != nil {
		addSet("cpf", *req.CPF)
	}
	if req.Username != nil {
		addSet("username", *req.Username)
	}
	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.DepartmentID != nil {
		addSet("department_id", *req.DepartmentID)
	}
	if req.FunctionID != nil {
		addSet("function_id", *req.FunctionID)
	}
	if req.EmploymentTypeID != nil {
		addSet("employment_type_id", *req.EmploymentTypeID)
	}
	if req.AdmissionDate != nil {
		addSet("admission_date", *req.AdmissionDate)
	}
	if req.DismissalDate != nil {
		addSet("dismissal_date", *req.DismissalDate)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.DailyWorkHours != nil {
		addSet("daily_work_hours", *req.DailyWorkHours)
	}

	if len(set) == 0 {
		return user.User{}, user.ErrNothingToUpdate
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to update user: %w", translateUserConstraint(err))
	}
	if tag.RowsAffected() == 0 {
		return user.User{}, user.ErrUserNotFound
	}

	return r.GetByID(ctx, req.ID)
}

// UpdatePassword implements user.UserRepository.
func (r *userRepository) UpdatePassword(ctx context.Context, id string, passwordHash string, mustChange bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, must_change_password = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, passwordHash, mustChange, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
