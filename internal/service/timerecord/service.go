package timerecord

import (
	"context"
	"fmt"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
)

type TimeRecordServiceImpl struct {
	recordRepo timerecord.TimeRecordRepository
	location   *time.Location
}

func NewTimeRecordService(recordRepo timerecord.TimeRecordRepository, location *time.Location) timerecord.TimeRecordService {
	if location == nil {
		location = time.Local
	}
	return &TimeRecordServiceImpl{
		recordRepo: recordRepo,
		location:   location,
	}
}

func (s *TimeRecordServiceImpl) now() time.Time {
	return time.Now().In(s.location)
}

// Punch implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) Punch(ctx context.Context) (timerecord.TimeRecordResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	now := s.now()
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	record, err := s.recordRepo.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	if record == nil {
		fresh := timerecord.TimeRecord{
			UserID: actor.UserID,
			Date:   today,
		}
		if err := fresh.ApplyPunch(clock); err != nil {
			return timerecord.TimeRecordResponse{}, err
		}
		created, err := s.recordRepo.Create(ctx, fresh)
		if err != nil {
			return timerecord.TimeRecordResponse{}, err
		}
		return timerecord.ToResponse(created), nil
	}

	if err := record.ApplyPunch(clock); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	updated, err := s.recordRepo.Update(ctx, *record)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	return timerecord.ToResponse(updated), nil
}

// GetToday implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) GetToday(ctx context.Context) (*timerecord.TimeRecordResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.recordRepo.GetByUserAndDate(ctx, actor.UserID, s.now().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	response := timerecord.ToResponse(*record)
	return &response, nil
}

// monthBounds returns the first and last day of a YYYY-MM month.
func monthBounds(month string) (string, string, error) {
	ref, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("parse month %q: %w", month, err)
	}
	first := time.Date(ref.Year(), ref.Month(), 1, 12, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}

// ListMine implements timerecord.TimeRecordService. Without a month filter
// the current month is listed.
func (s *TimeRecordServiceImpl) ListMine(ctx context.Context, filter timerecord.ListTimeRecordsFilter) ([]timerecord.TimeRecordResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	month := s.now().Format("2006-01")
	if filter.Month != nil && *filter.Month != "" {
		month = *filter.Month
	}

	startDate, endDate, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListForUser(ctx, actor.UserID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, timerecord.ToResponse(record))
	}

	return responses, nil
}

// ListForDate implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ListForDate(ctx context.Context, date string) ([]timerecord.TimeRecordResponse, error) {
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

	records, err := s.recordRepo.ListForDate(ctx, date, actor.Scope())
	if err != nil {
		return nil, err
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, timerecord.ToResponse(record))
	}

	return responses, nil
}

// Adjust implements timerecord.TimeRecordService. Cards of the current day
// cannot be edited, and the edit window closes on the first day of the
// previous month.
func (s *TimeRecordServiceImpl) Adjust(ctx context.Context, req timerecord.AdjustTimeRecordRequest) (timerecord.TimeRecordResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	if !actor.IsManager() {
		return timerecord.TimeRecordResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	record, err := s.recordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	now := s.now()
	if record.Date == now.Format("2006-01-02") {
		return timerecord.TimeRecordResponse{}, timerecord.ErrAdjustSameDay
	}
	earliest := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location).AddDate(0, -1, 0)
	if record.Date < earliest.Format("2006-01-02") {
		return timerecord.TimeRecordResponse{}, timerecord.ErrAdjustTooOld
	}

	if req.Entry1 != nil {
		record.Entry1 = req.Entry1
	}
	if req.Exit1 != nil {
		record.Exit1 = req.Exit1
	}
	if req.Entry2 != nil {
		record.Entry2 = req.Entry2
	}
	if req.Exit2 != nil {
		record.Exit2 = req.Exit2
	}
	record.IsAdjusted = true

	if err := record.RecalculateTotal(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	updated, err := s.recordRepo.Update(ctx, record)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	return timerecord.ToResponse(updated), nil
}
