package commands

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/commands/stay.go -package=commandsmock

import (
	"context"
	"time"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/payment"
	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/domain/stay"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckInInput struct {
	GuestID       uuid.UUID
	RoomID        uuid.UUID
	PaymentMethod string
	PlannedDays   *int
}

type CheckInResult struct {
	Stay       *stay.Stay
	Room       *room.Room
	Deposit    *deposit.Deposit
	RoomCharge decimal.Decimal
	TotalPaid  decimal.Decimal
}

type CheckOutInput struct {
	StayID        uuid.UUID
	KeyReturned   bool
	PaymentMethod string
}

type CheckOutResult struct {
	StayID                uuid.UUID
	RoomNumber            string
	CheckIn               time.Time
	CheckOut              time.Time
	ExpectedCheckout      time.Time
	ExtraDays             int
	LateFee               decimal.Decimal
	DepositReturned       bool
	TotalAdditionalCharge decimal.Decimal
}

type StayCommands interface {
	CheckIn(ctx context.Context, in CheckInInput) (*CheckInResult, error)
	CheckOut(ctx context.Context, in CheckOutInput) (*CheckOutResult, error)
}

type stayUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy stay.FeePolicy
}

func NewStayUseCase(uow shared.UnitOfWork, clk clock.Clock, policy stay.FeePolicy) StayCommands {
	return &stayUseCaseImpl{uow: uow, clock: clk, policy: policy}
}

func (uc *stayUseCaseImpl) CheckIn(ctx context.Context, in CheckInInput) (*CheckInResult, error) {
	if in.GuestID == uuid.Nil {
		return nil, invalid(errs.New("guest_id is required"))
	}
	if in.RoomID == uuid.Nil {
		return nil, invalid(errs.New("room_id is required"))
	}
	method, err := payment.ParseMethod(in.PaymentMethod)
	if err != nil {
		return nil, invalid(err)
	}
	plannedDays, err := stay.NewPlannedDays(in.PlannedDays)
	if err != nil {
		return nil, invalid(err)
	}

	now := uc.clock.Now()

	var result *CheckInResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, derr := tx.Guests().FindByID(ctx, in.GuestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return invalid(errs.Newf("guest %s does not exist", in.GuestID))
			}
			return fromRepo(derr, nil)
		}

		rm, derr := tx.Rooms().FindByIDForUpdate(ctx, in.RoomID)
		if derr != nil {
			return fromRepo(derr, ErrRoomUnavailable)
		}
		if derr = rm.Allocate(); derr != nil {
			return errs.Mark(derr, ErrRoomUnavailable)
		}

		s := stay.Open(g.ID(), rm.ID(), plannedDays, now)
		if derr = tx.Stays().Create(ctx, s); derr != nil {
			// The active-stay index is the backstop when the row lock is bypassed.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrRoomUnavailable)
			}
			return fromRepo(derr, nil)
		}
		if derr = tx.Rooms().UpdateStatus(ctx, rm); derr != nil {
			return fromRepo(derr, nil)
		}

		d := deposit.Issue(s.ID(), now)
		if derr = tx.Deposits().Create(ctx, d); derr != nil {
			return fromRepo(derr, nil)
		}

		charge := s.RoomCharge(rm.DailyRate())
		if derr = appendPayment(ctx, tx, s.ID(), payment.TypeRoomCharge, charge, method, now); derr != nil {
			return derr
		}
		if derr = appendPayment(ctx, tx, s.ID(), payment.TypeDeposit, d.Amount(), method, now); derr != nil {
			return derr
		}

		result = &CheckInResult{
			Stay:       s,
			Room:       rm,
			Deposit:    d,
			RoomCharge: charge,
			TotalPaid:  charge.Add(d.Amount()),
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}
	return result, nil
}

func (uc *stayUseCaseImpl) CheckOut(ctx context.Context, in CheckOutInput) (*CheckOutResult, error) {
	method, err := payment.ParseMethod(in.PaymentMethod)
	if err != nil {
		return nil, invalid(err)
	}

	now := uc.clock.Now()

	var result *CheckOutResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Stays().FindActiveByIDForUpdate(ctx, in.StayID)
		if derr != nil {
			return fromRepo(derr, ErrStayNotFound)
		}

		rm, derr := tx.Rooms().FindByIDForUpdate(ctx, s.RoomID())
		if derr != nil {
			return fromRepo(derr, nil)
		}

		assessment := uc.policy.Assess(s.CheckIn(), s.PlannedDays(), rm.DailyRate(), now)
		if assessment.LateFee.IsPositive() {
			if derr = appendPayment(ctx, tx, s.ID(), payment.TypeLateFee, assessment.LateFee, method, now); derr != nil {
				return derr
			}
		}

		if derr = s.Close(now); derr != nil {
			return errs.Mark(derr, ErrStayNotFound)
		}
		if derr = tx.Stays().Close(ctx, s); derr != nil {
			return fromRepo(derr, ErrStayNotFound)
		}

		rm.Release()
		if derr = tx.Rooms().UpdateStatus(ctx, rm); derr != nil {
			return fromRepo(derr, nil)
		}

		total := assessment.LateFee
		if in.KeyReturned {
			d, derr := returnDeposit(ctx, tx, s.ID(), method, now)
			if derr != nil {
				return derr
			}
			total = total.Sub(d.Amount())
		}

		result = &CheckOutResult{
			StayID:                s.ID(),
			RoomNumber:            rm.Number(),
			CheckIn:               s.CheckIn(),
			CheckOut:              now,
			ExpectedCheckout:      assessment.ExpectedCheckout,
			ExtraDays:             assessment.ExtraDays,
			LateFee:               assessment.LateFee,
			DepositReturned:       in.KeyReturned,
			TotalAdditionalCharge: total,
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}
	return result, nil
}

// returnDeposit settles the stay's deposit and books the refund in the ledger.
func returnDeposit(ctx context.Context, tx shared.Tx, stayID uuid.UUID, method payment.Method, now time.Time) (*deposit.Deposit, error) {
	d, err := tx.Deposits().FindByStayIDForUpdate(ctx, stayID)
	if err != nil {
		return nil, fromRepo(err, ErrStayNotFound)
	}
	if err = d.Return(now); err != nil {
		return nil, errs.Mark(err, ErrAlreadyReturned)
	}
	if err = tx.Deposits().MarkReturned(ctx, d); err != nil {
		return nil, fromRepo(err, ErrAlreadyReturned)
	}
	if err = appendPayment(ctx, tx, stayID, payment.TypeDepositReturn, d.RefundAmount(), method, now); err != nil {
		return nil, err
	}
	return d, nil
}

func appendPayment(
	ctx context.Context,
	tx shared.Tx,
	stayID uuid.UUID,
	typ payment.Type,
	amount decimal.Decimal,
	method payment.Method,
	now time.Time,
) error {
	p, err := payment.NewPayment(stayID, typ, amount, method, now)
	if err != nil {
		return invalid(err)
	}
	if err = tx.Payments().Append(ctx, p); err != nil {
		return fromRepo(err, nil)
	}
	return nil
}
