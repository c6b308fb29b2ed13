package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxRoomNumberLength = 10

var (
	ErrUnavailable     = errors.New("room is not available")
	ErrInvalidStatus   = errors.New("invalid room status")
	ErrInvalidBedType  = errors.New("invalid bed type")
	ErrInvalidNumber   = errors.New("room number is required")
	ErrNegativeRate    = errors.New("daily rate cannot be negative")
	ErrManualOccupy    = errors.New("rooms become occupied only through check-in")
	ErrOccupiedByGuest = errors.New("occupied rooms are released only through check-out")
)

// Room is a physical unit. Its status is the only gate for allocation.
type Room struct {
	id        uuid.UUID
	number    string
	bedType   BedType
	dailyRate decimal.Decimal
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(number string, bedType BedType, dailyRate decimal.Decimal, now time.Time) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" || len(number) > MaxRoomNumberLength {
		return nil, ErrInvalidNumber
	}
	if !bedType.IsValid() {
		return nil, ErrInvalidBedType
	}
	if dailyRate.IsNegative() {
		return nil, ErrNegativeRate
	}

	return &Room{
		id:        uuid.New(),
		number:    number,
		bedType:   bedType,
		dailyRate: dailyRate,
		status:    StatusAvailable,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	bedType BedType,
	dailyRate decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:        id,
		number:    number,
		bedType:   bedType,
		dailyRate: dailyRate,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Allocate claims the room for a check-in. Only AVAILABLE rooms can be claimed.
func (r *Room) Allocate() error {
	if r.status != StatusAvailable {
		return ErrUnavailable
	}
	r.status = StatusOccupied
	return nil
}

// Release sends the room to cleaning after a check-out. It never goes straight
// back to AVAILABLE.
func (r *Room) Release() {
	r.status = StatusCleaning
}

// ChangeStatus is the manual housekeeping transition (e.g. CLEANING -> AVAILABLE).
func (r *Room) ChangeStatus(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if to == StatusOccupied {
		return ErrManualOccupy
	}
	if r.status == StatusOccupied {
		return ErrOccupiedByGuest
	}
	r.status = to
	return nil
}

func (r *Room) IsAvailable() bool { return r.status == StatusAvailable }

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) Number() string             { return r.number }
func (r *Room) BedType() BedType           { return r.bedType }
func (r *Room) DailyRate() decimal.Decimal { return r.dailyRate }
func (r *Room) Status() Status             { return r.status }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
