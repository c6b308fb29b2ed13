package response

import (
	"time"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	StayID      uuid.UUID       `json:"stay_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"payment_type"`
	Method      string          `json:"method"`
	PaidAt      time.Time       `json:"paid_at"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	RoomNumber  string          `json:"room_number"`
}

type DepositResponse struct {
	ID         uuid.UUID       `json:"id"`
	StayID     uuid.UUID       `json:"stay_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	PaidAt     time.Time       `json:"paid_at"`
	ReturnedAt *time.Time      `json:"returned_at,omitempty"`
	FirstName  string          `json:"first_name,omitempty"`
	LastName   string          `json:"last_name,omitempty"`
	RoomNumber string          `json:"room_number,omitempty"`
}

func FromPaymentViews(vs []*queries.PaymentView) ([]*PaymentResponse, error) {
	res := make([]*PaymentResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, errs.Wrap(err, "copy payment views")
	}
	return res, nil
}

func FromDepositViews(vs []*queries.DepositView) ([]*DepositResponse, error) {
	res := make([]*DepositResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, errs.Wrap(err, "copy deposit views")
	}
	return res, nil
}

func FromDeposit(d *deposit.Deposit) *DepositResponse {
	return &DepositResponse{
		ID:         d.ID(),
		StayID:     d.StayID(),
		Amount:     d.Amount(),
		Status:     d.Status().String(),
		PaidAt:     d.PaidAt(),
		ReturnedAt: d.ReturnedAt(),
	}
}
