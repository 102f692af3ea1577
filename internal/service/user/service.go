package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// tempPasswordFromCPF derives the initial password: the first six digits of
// the CPF.
func tempPasswordFromCPF(cpf string) string {
	digits := validator.DigitsOnly(cpf)
	if len(digits) < 6 {
		return digits
	}
	return digits[:6]
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.CreatedUserResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return user.CreatedUserResponse{}, err
	}
	if !actor.IsAdmin() {
		return user.CreatedUserResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return user.CreatedUserResponse{}, err
	}

	tempPassword := tempPasswordFromCPF(req.CPF)
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.CreatedUserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		CPF:                req.CPF,
		Username:           req.Username,
		PasswordHash:       string(hash),
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		Role:               user.Role(req.Role),
		DepartmentID:       req.DepartmentID,
		FunctionID:         req.FunctionID,
		EmploymentTypeID:   req.EmploymentTypeID,
		AdmissionDate:      req.AdmissionDate,
		Status:             user.StatusActive,
		MustChangePassword: true,
		DailyWorkHours:     req.DailyWorkHours,
	})
	if err != nil {
		return user.CreatedUserResponse{}, err
	}

	return user.CreatedUserResponse{
		User:         user.ToResponse(created),
		TempPassword: tempPassword,
	}, nil
}

// GetByID implements user.UserService. Employees can only read themselves;
// managers are restricted to their department.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if !actor.IsAdmin() && actor.UserID != id {
		if !actor.IsManager() {
			return user.UserResponse{}, user.ErrAdminPrivilegeRequired
		}
		if actor.DepartmentID == nil || target.DepartmentID == nil || *actor.DepartmentID != *target.DepartmentID {
			return user.UserResponse{}, user.ErrAdminPrivilegeRequired
		}
	}

	return user.ToResponse(target), nil
}

// GetMe implements user.UserService.
func (s *UserServiceImpl) GetMe(ctx context.Context) (user.UserResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	me, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(me), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsManager() {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if !actor.IsAdmin() && actor.DepartmentID == nil {
		return nil, user.ErrNoDepartment
	}

	users, err := s.userRepo.List(ctx, actor.Scope())
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}

// Update implements user.UserService. A password in the request is hashed
// and written separately from the profile fields.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !actor.IsAdmin() {
		return user.UserResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(ctx, req.ID, string(hash), true); err != nil {
			return user.UserResponse{}, err
		}
	}

	profileOnly := req
	profileOnly.Password = nil
	updated, err := s.userRepo.Update(ctx, profileOnly)
	if err != nil {
		if req.Password != nil && err == user.ErrNothingToUpdate {
			updated, err = s.userRepo.GetByID(ctx, req.ID)
			if err != nil {
				return user.UserResponse{}, err
			}
			return user.ToResponse(updated), nil
		}
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}
