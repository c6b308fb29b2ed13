package request

import (
	"mansion-pos/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	GuestID       uuid.UUID `json:"guest_id" binding:"required"`
	RoomID        uuid.UUID `json:"room_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"omitempty,payment_method"`
	PlannedDays   *int      `json:"planned_days" binding:"omitempty,min=1,max=365"`
}

func (r *CheckInRequest) ToInput() commands.CheckInInput {
	return commands.CheckInInput{
		GuestID:       r.GuestID,
		RoomID:        r.RoomID,
		PaymentMethod: r.PaymentMethod,
		PlannedDays:   r.PlannedDays,
	}
}

// CheckOutRequest may be omitted entirely: the key counts as not returned and
// any late fee is taken in cash.
type CheckOutRequest struct {
	KeyReturned   bool   `json:"key_returned"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,payment_method"`
}

func (r *CheckOutRequest) ToInput(stayID uuid.UUID) commands.CheckOutInput {
	return commands.CheckOutInput{
		StayID:        stayID,
		KeyReturned:   r.KeyReturned,
		PaymentMethod: r.PaymentMethod,
	}
}

type ReturnDepositRequest struct {
	PaymentMethod string `json:"payment_method" binding:"omitempty,payment_method"`
}

func (r *ReturnDepositRequest) ToInput(stayID uuid.UUID) commands.ReturnDepositInput {
	return commands.ReturnDepositInput{StayID: stayID, PaymentMethod: r.PaymentMethod}
}
