//go:build unit || e2e

package builder

import (
	"time"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/domain/stay"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StayBuilder describes an open stay of a guest in a room.
type StayBuilder struct {
	ID          uuid.UUID
	Guest       *GuestBuilder
	Room        *RoomBuilder
	CheckIn     time.Time
	PlannedDays int
}

func NewStayBuilder() *StayBuilder {
	return &StayBuilder{
		ID:          uuid.New(),
		Guest:       NewGuestBuilder(),
		Room:        NewRoomBuilder().With(func(r *RoomBuilder) { r.Status = room.StatusOccupied }),
		CheckIn:     time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC),
		PlannedDays: 2,
	}
}

func (s *StayBuilder) With(mutate func(*StayBuilder)) *StayBuilder {
	mutate(s)
	return s
}

func (s *StayBuilder) BuildDomain() *stay.Stay {
	return stay.ReconstructStay(
		s.ID, s.Guest.ID, s.Room.ID,
		s.CheckIn, nil,
		stay.ReconstructPlannedDays(s.PlannedDays),
		stay.StatusCheckedIn,
		s.CheckIn,
	)
}

func (s *StayBuilder) BuildView() *queries.StayView {
	depositStatus := deposit.StatusPaid.String()
	return &queries.StayView{
		ID:            s.ID,
		GuestID:       s.Guest.ID,
		RoomID:        s.Room.ID,
		CheckIn:       s.CheckIn,
		PlannedDays:   s.PlannedDays,
		Status:        stay.StatusCheckedIn.String(),
		FirstName:     s.Guest.FirstName,
		LastName:      s.Guest.LastName,
		NationalID:    s.Guest.NationalID,
		Phone:         s.Guest.Phone,
		RoomNumber:    s.Room.Number,
		BedType:       s.Room.BedType.String(),
		PricePerDay:   s.Room.DailyRate,
		DepositStatus: &depositStatus,
	}
}

func (s *StayBuilder) BuildCheckInResult() *commands.CheckInResult {
	d := deposit.Issue(s.ID, s.CheckIn)
	charge := s.Room.DailyRate.Mul(decimal.NewFromInt(int64(s.PlannedDays)))
	return &commands.CheckInResult{
		Stay:       s.BuildDomain(),
		Room:       s.Room.BuildDomain(),
		Deposit:    d,
		RoomCharge: charge,
		TotalPaid:  charge.Add(d.Amount()),
	}
}
