package response

import (
	"time"

	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID          uuid.UUID       `json:"id"`
	RoomNumber  string          `json:"room_number"`
	BedType     string          `json:"bed_type"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func FromRoom(r *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:          r.ID(),
		RoomNumber:  r.Number(),
		BedType:     r.BedType().String(),
		PricePerDay: r.DailyRate(),
		Status:      r.Status().String(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func FromRoomViews(vs []*queries.RoomView) ([]*RoomResponse, error) {
	res := make([]*RoomResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, errs.Wrap(err, "copy room views")
	}
	return res, nil
}
