package stay

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stay is one guest's occupancy of one room from check-in to check-out.
type Stay struct {
	id          uuid.UUID
	guestID     uuid.UUID
	roomID      uuid.UUID
	checkIn     time.Time
	checkOut    *time.Time
	plannedDays PlannedDays
	status      Status
	createdAt   time.Time
}

// Open starts a stay at now. It is the only way a stay comes into existence.
func Open(guestID, roomID uuid.UUID, plannedDays PlannedDays, now time.Time) *Stay {
	return &Stay{
		id:          uuid.New(),
		guestID:     guestID,
		roomID:      roomID,
		checkIn:     now,
		plannedDays: plannedDays,
		status:      StatusCheckedIn,
		createdAt:   now,
	}
}

func ReconstructStay(
	id, guestID, roomID uuid.UUID,
	checkIn time.Time,
	checkOut *time.Time,
	plannedDays PlannedDays,
	status Status,
	createdAt time.Time,
) *Stay {
	return &Stay{
		id:          id,
		guestID:     guestID,
		roomID:      roomID,
		checkIn:     checkIn,
		checkOut:    checkOut,
		plannedDays: plannedDays,
		status:      status,
		createdAt:   createdAt,
	}
}

func (s *Stay) Close(now time.Time) error {
	tr, ok := TransitionFor(s.status, EventCheckOut)
	if !ok {
		return ErrInvalidTransition
	}
	s.status = tr.To
	s.checkOut = &now
	return nil
}

// RoomCharge is the amount billed up front for the planned nights.
func (s *Stay) RoomCharge(dailyRate decimal.Decimal) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(s.plannedDays.Int())))
}

func (s *Stay) IsActive() bool { return s.status == StatusCheckedIn }

func (s *Stay) ID() uuid.UUID            { return s.id }
func (s *Stay) GuestID() uuid.UUID       { return s.guestID }
func (s *Stay) RoomID() uuid.UUID        { return s.roomID }
func (s *Stay) CheckIn() time.Time       { return s.checkIn }
func (s *Stay) CheckOut() *time.Time     { return s.checkOut }
func (s *Stay) PlannedDays() PlannedDays { return s.plannedDays }
func (s *Stay) Status() Status           { return s.status }
func (s *Stay) CreatedAt() time.Time     { return s.createdAt }
