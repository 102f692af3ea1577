package justification

import (
	"context"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/justification"
	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
)

type JustificationServiceImpl struct {
	justificationRepo justification.JustificationRepository
	userRepo          user.UserRepository
}

func NewJustificationService(
	justificationRepo justification.JustificationRepository,
	userRepo user.UserRepository,
) justification.JustificationService {
	return &JustificationServiceImpl{
		justificationRepo: justificationRepo,
		userRepo:          userRepo,
	}
}

// Create implements justification.JustificationService.
func (s *JustificationServiceImpl) Create(ctx context.Context, req justification.CreateJustificationRequest) (justification.JustificationResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return justification.JustificationResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}

	created, err := s.justificationRepo.Create(ctx, justification.Justification{
		UserID:         actor.UserID,
		Date:           req.Date,
		Type:           justification.Type(req.Type),
		Reason:         req.Reason,
		RecordToAdjust: req.RecordToAdjust,
		AbonaHoras:     req.AbonaHoras || justification.DefaultAbonaHoras(justification.Type(req.Type)),
		Status:         justification.StatusPending,
	})
	if err != nil {
		return justification.JustificationResponse{}, err
	}

	return justification.ToResponse(created), nil
}

// ManagerCreate implements justification.JustificationService. The entry is
// approved on the spot with the manager as approver.
func (s *JustificationServiceImpl) ManagerCreate(ctx context.Context, req justification.ManagerCreateJustificationRequest) (justification.JustificationResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	if !actor.IsManager() {
		return justification.JustificationResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	if err := s.checkScope(actor, target.DepartmentID); err != nil {
		return justification.JustificationResponse{}, err
	}

	now := time.Now()
	created, err := s.justificationRepo.Create(ctx, justification.Justification{
		UserID:     req.UserID,
		Date:       req.Date,
		Type:       justification.Type(req.Type),
		Reason:     req.Reason,
		AbonaHoras: justification.DefaultAbonaHoras(justification.Type(req.Type)),
		Status:     justification.StatusApproved,
		ApprovedBy: &actor.UserID,
		ApprovedAt: &now,
	})
	if err != nil {
		return justification.JustificationResponse{}, err
	}

	return justification.ToResponse(created), nil
}

// checkScope rejects manager actions on users outside their department.
func (s *JustificationServiceImpl) checkScope(actor jwt.Actor, departmentID *string) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.DepartmentID == nil || departmentID == nil || *actor.DepartmentID != *departmentID {
		return justification.ErrOutsideDepartment
	}
	return nil
}

// ListMine implements justification.JustificationService.
func (s *JustificationServiceImpl) ListMine(ctx context.Context) ([]justification.JustificationResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	justifications, err := s.justificationRepo.ListForUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	return toResponses(justifications), nil
}

// ListPending implements justification.JustificationService.
func (s *JustificationServiceImpl) ListPending(ctx context.Context) ([]justification.JustificationResponse, error) {
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

	justifications, err := s.justificationRepo.ListPending(ctx, actor.Scope())
	if err != nil {
		return nil, err
	}

	return toResponses(justifications), nil
}

// Decide implements justification.JustificationService.
func (s *JustificationServiceImpl) Decide(ctx context.Context, req justification.DecideJustificationRequest) (justification.JustificationResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	if !actor.IsManager() {
		return justification.JustificationResponse{}, user.ErrAdminPrivilegeRequired
	}

	pending, err := s.justificationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	if pending.Status != justification.StatusPending {
		return justification.JustificationResponse{}, justification.ErrAlreadyProcessed
	}
	if err := s.checkScope(actor, pending.DepartmentID); err != nil {
		return justification.JustificationResponse{}, err
	}

	decided, err := s.justificationRepo.Decide(ctx, req.ID, actor.UserID, req.Approved)
	if err != nil {
		return justification.JustificationResponse{}, err
	}

	return justification.ToResponse(decided), nil
}

func toResponses(justifications []justification.Justification) []justification.JustificationResponse {
	responses := make([]justification.JustificationResponse, 0, len(justifications))
	for _, j := range justifications {
		responses = append(responses, justification.ToResponse(j))
	}
	return responses
}
