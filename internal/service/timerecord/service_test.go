package timerecord

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontohr/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontohr/ponto-backend-go/internal/domain/user"
)

type stubTimeRecordRepo struct {
	record  timerecord.TimeRecord
	updated *timerecord.TimeRecord
}

func (s *stubTimeRecordRepo) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	return record, nil
}

func (s *stubTimeRecordRepo) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	if id != s.record.ID {
		return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
	}
	return s.record, nil
}

func (s *stubTimeRecordRepo) GetByUserAndDate(ctx context.Context, userID string, date string) (*timerecord.TimeRecord, error) {
	return nil, nil
}

func (s *stubTimeRecordRepo) ListForUser(ctx context.Context, userID string, startDate string, endDate string) ([]timerecord.TimeRecord, error) {
	return nil, nil
}

func (s *stubTimeRecordRepo) ListForDate(ctx context.Context, date string, departmentID *string) ([]timerecord.TimeRecord, error) {
	return nil, nil
}

func (s *stubTimeRecordRepo) Update(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	s.updated = &record
	return record, nil
}

func actorContext(t *testing.T, role user.Role) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	departmentID := "01890a5d-ac96-774b-bcce-b302099a8060"
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":       "01890a5d-ac96-774b-bcce-b302099a8057",
		"username":      "gestor",
		"role":          string(role),
		"department_id": departmentID,
		"type":          "access",
		"exp":           time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestAdjust_WindowBoundaries(t *testing.T) {
	now := time.Now().UTC()
	firstOfPreviousMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	tests := []struct {
		name       string
		recordDate string
		wantErr    error
	}{
		{
			name:       "current day is rejected",
			recordDate: now.Format("2006-01-02"),
			wantErr:    timerecord.ErrAdjustSameDay,
		},
		{
			name:       "yesterday is editable",
			recordDate: now.AddDate(0, 0, -1).Format("2006-01-02"),
		},
		{
			name:       "first day of the previous month is editable",
			recordDate: firstOfPreviousMonth.Format("2006-01-02"),
		},
		{
			name:       "day before the window is rejected",
			recordDate: firstOfPreviousMonth.AddDate(0, 0, -1).Format("2006-01-02"),
			wantErr:    timerecord.ErrAdjustTooOld,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubTimeRecordRepo{
				record: timerecord.TimeRecord{
					ID:     "01890a5d-ac96-774b-bcce-b302099a8058",
					UserID: "01890a5d-ac96-774b-bcce-b302099a8059",
					Date:   tt.recordDate,
				},
			}
			service := NewTimeRecordService(repo, time.UTC)

			entry1 := "08:00"
			exit1 := "12:00"
			result, err := service.Adjust(actorContext(t, user.RoleManager), timerecord.AdjustTimeRecordRequest{
				ID:     repo.record.ID,
				Entry1: &entry1,
				Exit1:  &exit1,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.updated)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, repo.updated)
			assert.True(t, result.IsAdjusted)
			require.NotNil(t, result.TotalHours)
			assert.InDelta(t, 4.0, *result.TotalHours, 0.001)
		})
	}
}

func TestAdjust_RequiresManagerRole(t *testing.T) {
	repo := &stubTimeRecordRepo{
		record: timerecord.TimeRecord{
			ID:   "01890a5d-ac96-774b-bcce-b302099a8058",
			Date: time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02"),
		},
	}
	service := NewTimeRecordService(repo, time.UTC)

	entry1 := "08:00"
	_, err := service.Adjust(actorContext(t, user.RoleEmployee), timerecord.AdjustTimeRecordRequest{
		ID:     repo.record.ID,
		Entry1: &entry1,
	})

	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
	assert.Nil(t, repo.updated)
}

func TestAdjust_UnknownRecord(t *testing.T) {
	repo := &stubTimeRecordRepo{
		record: timerecord.TimeRecord{
			ID:   "01890a5d-ac96-774b-bcce-b302099a8058",
			Date: time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02"),
		},
	}
	service := NewTimeRecordService(repo, time.UTC)

	_, err := service.Adjust(actorContext(t, user.RoleManager), timerecord.AdjustTimeRecordRequest{
		ID: "01890a5d-ac96-774b-bcce-b302099a9999",
	})

	assert.ErrorIs(t, err, timerecord.ErrRecordNotFound)
}
