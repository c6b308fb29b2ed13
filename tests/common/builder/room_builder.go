//go:build unit || e2e

package builder

import (
	"time"

	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomBuilder struct {
	ID        uuid.UUID
	Number    string
	BedType   room.BedType
	DailyRate decimal.Decimal
	Status    room.Status
	CreatedAt time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:        uuid.New(),
		Number:    "101",
		BedType:   room.BedTypeDouble,
		DailyRate: decimal.NewFromInt(400),
		Status:    room.StatusAvailable,
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(r.ID, r.Number, r.BedType, r.DailyRate, r.Status, r.CreatedAt, r.CreatedAt)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:          r.ID,
		RoomNumber:  r.Number,
		BedType:     r.BedType.String(),
		PricePerDay: r.DailyRate,
		Status:      r.Status.String(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.CreatedAt,
	}
}
