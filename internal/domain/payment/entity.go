package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount sign does not match payment type")

// Payment is an immutable ledger entry. Refunds carry a negative amount.
type Payment struct {
	id     uuid.UUID
	stayID uuid.UUID
	amount decimal.Decimal
	typ    Type
	method Method
	paidAt time.Time
}

func NewPayment(stayID uuid.UUID, typ Type, amount decimal.Decimal, method Method, now time.Time) (*Payment, error) {
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if err := validateSign(typ, amount); err != nil {
		return nil, err
	}

	return &Payment{
		id:     uuid.New(),
		stayID: stayID,
		amount: amount,
		typ:    typ,
		method: method,
		paidAt: now,
	}, nil
}

func ReconstructPayment(id, stayID uuid.UUID, amount decimal.Decimal, typ Type, method Method, paidAt time.Time) *Payment {
	return &Payment{
		id:     id,
		stayID: stayID,
		amount: amount,
		typ:    typ,
		method: method,
		paidAt: paidAt,
	}
}

func validateSign(typ Type, amount decimal.Decimal) error {
	switch typ {
	case TypeDepositReturn:
		if !amount.IsNegative() {
			return ErrInvalidAmount
		}
	case TypeLateFee, TypeDeposit:
		if !amount.IsPositive() {
			return ErrInvalidAmount
		}
	case TypeRoomCharge:
		if amount.IsNegative() {
			return ErrInvalidAmount
		}
	}
	return nil
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) StayID() uuid.UUID       { return p.stayID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Type() Type              { return p.typ }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) PaidAt() time.Time       { return p.paidAt }
