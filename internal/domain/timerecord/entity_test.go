package timerecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(s string) *string {
	return &s
}

func TestMinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"0830", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := MinutesSinceMidnight(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestApplyPunch_FillsSlotsInOrder(t *testing.T) {
	record := &TimeRecord{}

	require.NoError(t, record.ApplyPunch("08:00"))
	require.NoError(t, record.ApplyPunch("12:00"))
	require.NoError(t, record.ApplyPunch("13:00"))
	require.NoError(t, record.ApplyPunch("17:30"))

	assert.Equal(t, "08:00", *record.Entry1)
	assert.Equal(t, "12:00", *record.Exit1)
	assert.Equal(t, "13:00", *record.Entry2)
	assert.Equal(t, "17:30", *record.Exit2)

	require.NotNil(t, record.TotalHours)
	assert.InDelta(t, 8.5, *record.TotalHours, 0.001)
}

func TestApplyPunch_RejectsFifthPunch(t *testing.T) {
	record := &TimeRecord{
		Entry1: clock("08:00"),
		Exit1:  clock("12:00"),
		Entry2: clock("13:00"),
		Exit2:  clock("17:00"),
	}

	err := record.ApplyPunch("19:00")
	assert.ErrorIs(t, err, ErrAllSlotsFilled)
}

func TestApplyPunch_EnforcesMinimumGap(t *testing.T) {
	record := &TimeRecord{}
	require.NoError(t, record.ApplyPunch("08:00"))

	err := record.ApplyPunch("08:59")
	assert.ErrorIs(t, err, ErrPunchTooSoon)
	assert.Nil(t, record.Exit1)

	// Exactly one hour later is allowed.
	require.NoError(t, record.ApplyPunch("09:00"))
	assert.Equal(t, "09:00", *record.Exit1)
}

func TestRecalculateTotal(t *testing.T) {
	t.Run("open pair contributes nothing", func(t *testing.T) {
		record := &TimeRecord{
			Entry1: clock("08:00"),
			Exit1:  clock("12:00"),
			Entry2: clock("13:00"),
		}

		require.NoError(t, record.RecalculateTotal())
		require.NotNil(t, record.TotalHours)
		assert.InDelta(t, 4.0, *record.TotalHours, 0.001)
	})

	t.Run("no completed pair clears total", func(t *testing.T) {
		record := &TimeRecord{Entry1: clock("08:00"), TotalHours: floatPtr(3)}

		require.NoError(t, record.RecalculateTotal())
		assert.Nil(t, record.TotalHours)
	})

	t.Run("exit before entry", func(t *testing.T) {
		record := &TimeRecord{
			Entry1: clock("12:00"),
			Exit1:  clock("08:00"),
		}

		err := record.RecalculateTotal()
		assert.ErrorIs(t, err, ErrExitBeforeEntry)
	})
}

func TestLastPunch(t *testing.T) {
	record := &TimeRecord{}
	assert.Nil(t, record.LastPunch())

	record.Entry1 = clock("08:00")
	assert.Equal(t, "08:00", *record.LastPunch())

	record.Exit1 = clock("12:00")
	record.Entry2 = clock("13:00")
	assert.Equal(t, "13:00", *record.LastPunch())

	record.Exit2 = clock("17:00")
	assert.Equal(t, "17:00", *record.LastPunch())
}

func floatPtr(f float64) *float64 {
	return &f
}
