package deposit

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyReturned = errors.New("deposit already returned")
	ErrInvalidStatus   = errors.New("invalid deposit status")
)

// KeyDepositAmount is the fixed key deposit collected at check-in.
var KeyDepositAmount = decimal.NewFromInt(100)

type Status string

const (
	StatusPaid     Status = "PAID"
	StatusReturned Status = "RETURNED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPaid, StatusReturned:
		return true
	default:
		return false
	}
}

type Deposit struct {
	id         uuid.UUID
	stayID     uuid.UUID
	amount     decimal.Decimal
	status     Status
	paidAt     time.Time
	returnedAt *time.Time
}

// Issue creates the key deposit for a stay being checked in.
func Issue(stayID uuid.UUID, now time.Time) *Deposit {
	return &Deposit{
		id:     uuid.New(),
		stayID: stayID,
		amount: KeyDepositAmount,
		status: StatusPaid,
		paidAt: now,
	}
}

func ReconstructDeposit(
	id, stayID uuid.UUID,
	amount decimal.Decimal,
	status Status,
	paidAt time.Time,
	returnedAt *time.Time,
) *Deposit {
	return &Deposit{
		id:         id,
		stayID:     stayID,
		amount:     amount,
		status:     status,
		paidAt:     paidAt,
		returnedAt: returnedAt,
	}
}

// Return settles the deposit. It can happen at most once.
func (d *Deposit) Return(now time.Time) error {
	if d.status == StatusReturned {
		return ErrAlreadyReturned
	}
	d.status = StatusReturned
	d.returnedAt = &now
	return nil
}

// RefundAmount is the signed ledger amount for handing the deposit back.
func (d *Deposit) RefundAmount() decimal.Decimal {
	return d.amount.Neg()
}

func (d *Deposit) IsReturned() bool { return d.status == StatusReturned }

func (d *Deposit) ID() uuid.UUID           { return d.id }
func (d *Deposit) StayID() uuid.UUID       { return d.stayID }
func (d *Deposit) Amount() decimal.Decimal { return d.amount }
func (d *Deposit) Status() Status          { return d.status }
func (d *Deposit) PaidAt() time.Time       { return d.paidAt }
func (d *Deposit) ReturnedAt() *time.Time  { return d.returnedAt }
