package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pontohr/ponto-backend-go/internal/domain/passwordreset"
	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohr/ponto-backend-go/internal/repository/postgresql"
)

type PasswordResetServiceImpl struct {
	db        *database.DB
	userRepo  user.UserRepository
	resetRepo passwordreset.PasswordResetRepository
}

func NewPasswordResetService(
	db *database.DB,
	userRepo user.UserRepository,
	resetRepo passwordreset.PasswordResetRepository,
) passwordreset.PasswordResetService {
	return &PasswordResetServiceImpl{
		db:        db,
		userRepo:  userRepo,
		resetRepo: resetRepo,
	}
}

// CreateRequest implements passwordreset.PasswordResetService.
func (s *PasswordResetServiceImpl) CreateRequest(ctx context.Context, req passwordreset.CreateRequest) (passwordreset.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return passwordreset.RequestResponse{}, err
	}

	owner, err := s.userRepo.GetByCPF(ctx, req.CPF)
	if err != nil {
		return passwordreset.RequestResponse{}, err
	}

	created, err := s.resetRepo.Create(ctx, passwordreset.Request{
		UserID: owner.ID,
		CPF:    owner.CPF,
		Status: passwordreset.StatusPending,
	})
	if err != nil {
		return passwordreset.RequestResponse{}, err
	}

	return passwordreset.ToResponse(created), nil
}

// ListPending implements passwordreset.PasswordResetService.
func (s *PasswordResetServiceImpl) ListPending(ctx context.Context) ([]passwordreset.RequestResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	requests, err := s.resetRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]passwordreset.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, passwordreset.ToResponse(request))
	}

	return responses, nil
}

// Resolve implements passwordreset.PasswordResetService. Setting the new
// password and closing the request happen in one transaction.
func (s *PasswordResetServiceImpl) Resolve(ctx context.Context, req passwordreset.ResolveRequest) (passwordreset.RequestResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return passwordreset.RequestResponse{}, err
	}
	if !actor.IsAdmin() {
		return passwordreset.RequestResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return passwordreset.RequestResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return passwordreset.RequestResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var resolved passwordreset.Request
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		resolved, err = s.resetRepo.Resolve(txCtx, req.ID, actor.UserID)
		if err != nil {
			return err
		}

		return s.userRepo.UpdatePassword(txCtx, resolved.UserID, string(hash), true)
	})
	if err != nil {
		return passwordreset.RequestResponse{}, err
	}

	return passwordreset.ToResponse(resolved), nil
}
