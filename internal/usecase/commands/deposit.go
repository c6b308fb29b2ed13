package commands

//go:generate mockgen -source=deposit.go -destination=../../../tests/mock/commands/deposit.go -package=commandsmock

import (
	"context"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/payment"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReturnDepositInput struct {
	StayID        uuid.UUID
	PaymentMethod string
}

type DepositCommands interface {
	ReturnDeposit(ctx context.Context, in ReturnDepositInput) (*deposit.Deposit, error)
}

type depositUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDepositUseCase(uow shared.UnitOfWork, clk clock.Clock) DepositCommands {
	return &depositUseCaseImpl{uow: uow, clock: clk}
}

// ReturnDeposit hands back a deposit after the fact, typically when a key
// shows up after the guest checked out without it. Deposits of stays that are
// still checked in are settled by CheckOut instead.
func (uc *depositUseCaseImpl) ReturnDeposit(ctx context.Context, in ReturnDepositInput) (*deposit.Deposit, error) {
	method, err := payment.ParseMethod(in.PaymentMethod)
	if err != nil {
		return nil, invalid(err)
	}

	now := uc.clock.Now()

	var returned *deposit.Deposit
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Stays().FindActiveByIDForUpdate(ctx, in.StayID)
		if derr == nil {
			return invalid(errs.New("stay is still checked in; return the deposit at check-out"))
		}
		if !infra.IsKind(derr, infra.KindNotFound) {
			return fromRepo(derr, nil)
		}

		d, derr := returnDeposit(ctx, tx, in.StayID, method, now)
		if derr != nil {
			return derr
		}
		returned = d
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}
	return returned, nil
}
