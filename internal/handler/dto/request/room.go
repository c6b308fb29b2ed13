package request

import (
	"mansion-pos/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type RegisterRoomRequest struct {
	RoomNumber  string          `json:"room_number" binding:"required,max=10"`
	BedType     string          `json:"bed_type" binding:"required,bed_type"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
}

func (r *RegisterRoomRequest) ToInput() commands.RegisterRoomInput {
	return commands.RegisterRoomInput{
		Number:    r.RoomNumber,
		BedType:   r.BedType,
		DailyRate: r.PricePerDay,
	}
}

type RoomStatusRequest struct {
	Status string `json:"status" binding:"required,room_status"`
}

type RoomListQuery struct {
	Status string `form:"status" binding:"omitempty,room_status"`
}
