package commands

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/room.go -package=commandsmock

import (
	"context"

	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterRoomInput struct {
	Number    string
	BedType   string
	DailyRate decimal.Decimal
}

type RoomCommands interface {
	RegisterRoom(ctx context.Context, in RegisterRoomInput) (*room.Room, error)
	ChangeRoomStatus(ctx context.Context, id uuid.UUID, status string) (*room.Room, error)
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

func (uc *roomUseCaseImpl) RegisterRoom(ctx context.Context, in RegisterRoomInput) (*room.Room, error) {
	rm, err := room.NewRoom(in.Number, room.BedType(in.BedType), in.DailyRate, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Rooms().Create(ctx, rm); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateKey)
			}
			return fromRepo(derr, nil)
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}
	return rm, nil
}

// ChangeRoomStatus is the housekeeping path (CLEANING -> AVAILABLE and back).
// Occupancy is only ever changed by check-in and check-out.
func (uc *roomUseCaseImpl) ChangeRoomStatus(ctx context.Context, id uuid.UUID, status string) (*room.Room, error) {
	target := room.Status(status)
	if !target.IsValid() {
		return nil, invalid(room.ErrInvalidStatus)
	}

	var updated *room.Room
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, derr := tx.Rooms().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return fromRepo(derr, ErrRoomNotFound)
		}

		if derr = rm.ChangeStatus(target); derr != nil {
			if errs.Is(derr, room.ErrOccupiedByGuest) {
				return errs.Mark(derr, ErrRoomUnavailable)
			}
			return invalid(derr)
		}
		if derr = tx.Rooms().UpdateStatus(ctx, rm); derr != nil {
			return fromRepo(derr, ErrRoomNotFound)
		}
		updated = rm
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}
	return updated, nil
}
