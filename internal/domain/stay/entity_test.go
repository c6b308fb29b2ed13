//go:build unit

package stay_test

import (
	"testing"
	"time"

	"mansion-pos/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewPlannedDays(t *testing.T) {
	tests := []struct {
		name  string
		input *int
		want  int
		errIs error
	}{
		{name: "omitted defaults to one", input: nil, want: 1},
		{name: "explicit value", input: intPtr(3), want: 3},
		{name: "upper bound", input: intPtr(stay.MaxPlannedDays), want: stay.MaxPlannedDays},
		{name: "zero", input: intPtr(0), errIs: stay.ErrInvalidPlannedDays},
		{name: "negative", input: intPtr(-2), errIs: stay.ErrInvalidPlannedDays},
		{name: "too long", input: intPtr(stay.MaxPlannedDays + 1), errIs: stay.ErrInvalidPlannedDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stay.NewPlannedDays(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Int())
		})
	}
}

func TestOpenAndClose(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	guestID, roomID := uuid.New(), uuid.New()

	s := stay.Open(guestID, roomID, days(2), now)

	assert.Equal(t, stay.StatusCheckedIn, s.Status())
	assert.True(t, s.IsActive())
	assert.Equal(t, now, s.CheckIn())
	assert.Nil(t, s.CheckOut())
	assert.Equal(t, guestID, s.GuestID())
	assert.Equal(t, roomID, s.RoomID())

	later := now.Add(30 * time.Hour)
	require.NoError(t, s.Close(later))
	assert.Equal(t, stay.StatusCheckedOut, s.Status())
	require.NotNil(t, s.CheckOut())
	assert.Equal(t, later, *s.CheckOut())

	t.Run("closed stay cannot close again", func(t *testing.T) {
		err := s.Close(later.Add(time.Hour))
		assert.ErrorIs(t, err, stay.ErrInvalidTransition)
		assert.Equal(t, later, *s.CheckOut())
	})
}

func TestRoomCharge(t *testing.T) {
	s := stay.Open(uuid.New(), uuid.New(), days(3), time.Now())
	assert.True(t, decimal.NewFromInt(1200).Equal(s.RoomCharge(decimal.NewFromInt(400))))
}

func TestTransitionFor(t *testing.T) {
	tr, ok := stay.TransitionFor(stay.StatusCheckedIn, stay.EventCheckOut)
	require.True(t, ok)
	assert.Equal(t, stay.StatusCheckedOut, tr.To)

	_, ok = stay.TransitionFor(stay.StatusCheckedOut, stay.EventCheckOut)
	assert.False(t, ok)
}
