//go:build unit

package room_test

import (
	"testing"
	"time"

	"mansion-pos/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func roomWithStatus(s room.Status) *room.Room {
	return room.ReconstructRoom(uuid.New(), "101", room.BedTypeDouble, decimal.NewFromInt(400), s, now, now)
}

func TestNewRoom(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		bedType room.BedType
		rate    string
		errIs   error
	}{
		{name: "valid double", number: "101", bedType: room.BedTypeDouble, rate: "400"},
		{name: "number is trimmed", number: "  102 ", bedType: room.BedTypeSingle, rate: "350.50"},
		{name: "free room", number: "103", bedType: room.BedTypeSingle, rate: "0"},
		{name: "empty number", number: "  ", bedType: room.BedTypeSingle, rate: "400", errIs: room.ErrInvalidNumber},
		{name: "too long number", number: "12345678901", bedType: room.BedTypeSingle, rate: "400", errIs: room.ErrInvalidNumber},
		{name: "unknown bed type", number: "104", bedType: room.BedType("king"), rate: "400", errIs: room.ErrInvalidBedType},
		{name: "negative rate", number: "105", bedType: room.BedTypeDouble, rate: "-1", errIs: room.ErrNegativeRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := room.NewRoom(tt.number, tt.bedType, decimal.RequireFromString(tt.rate), now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, r.ID())
			assert.Equal(t, room.StatusAvailable, r.Status())
			assert.NotContains(t, r.Number(), " ")
		})
	}
}

func TestAllocate(t *testing.T) {
	t.Run("available room becomes occupied", func(t *testing.T) {
		r := roomWithStatus(room.StatusAvailable)
		require.NoError(t, r.Allocate())
		assert.Equal(t, room.StatusOccupied, r.Status())
	})

	for _, s := range []room.Status{room.StatusOccupied, room.StatusCleaning} {
		t.Run(string(s)+" room is unavailable", func(t *testing.T) {
			r := roomWithStatus(s)
			assert.ErrorIs(t, r.Allocate(), room.ErrUnavailable)
			assert.Equal(t, s, r.Status())
		})
	}
}

func TestRelease(t *testing.T) {
	r := roomWithStatus(room.StatusOccupied)
	r.Release()
	assert.Equal(t, room.StatusCleaning, r.Status())
}

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		name  string
		from  room.Status
		to    room.Status
		errIs error
	}{
		{name: "cleaning to available", from: room.StatusCleaning, to: room.StatusAvailable},
		{name: "available to cleaning", from: room.StatusAvailable, to: room.StatusCleaning},
		{name: "manual occupy is rejected", from: room.StatusAvailable, to: room.StatusOccupied, errIs: room.ErrManualOccupy},
		{name: "occupied room cannot be freed manually", from: room.StatusOccupied, to: room.StatusAvailable, errIs: room.ErrOccupiedByGuest},
		{name: "unknown status", from: room.StatusCleaning, to: room.Status("BROKEN"), errIs: room.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := roomWithStatus(tt.from)
			err := r.ChangeStatus(tt.to)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.from, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, r.Status())
		})
	}
}
