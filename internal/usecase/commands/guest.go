package commands

//go:generate mockgen -source=guest.go -destination=../../../tests/mock/commands/guest.go -package=commandsmock

import (
	"context"

	"mansion-pos/internal/domain/guest"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestInput struct {
	FirstName  string
	LastName   string
	NationalID string
	Phone      *string
	Address    *string
}

type LookupOrCreateGuestResult struct {
	Guest             *guest.Guest
	ReturningCustomer bool
}

type GuestCommands interface {
	LookupOrCreateGuest(ctx context.Context, in GuestInput) (*LookupOrCreateGuestResult, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, in GuestInput) (*guest.Guest, error)
	DeleteGuest(ctx context.Context, id uuid.UUID) error
}

type guestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewGuestUseCase(uow shared.UnitOfWork, clk clock.Clock) GuestCommands {
	return &guestUseCaseImpl{uow: uow, clock: clk}
}

func (in GuestInput) identity() (guest.Name, guest.NationalID, error) {
	name, err := guest.NewName(in.FirstName, in.LastName)
	if err != nil {
		return guest.Name{}, guest.NationalID{}, invalid(err)
	}
	nid, err := guest.NewNationalID(in.NationalID)
	if err != nil {
		return guest.Name{}, guest.NationalID{}, invalid(err)
	}
	return name, nid, nil
}

// LookupOrCreateGuest reuses the guest registered under the same national id.
// It runs outside an explicit transaction so that losing an insert race to a
// concurrent registration can fall back to a second lookup.
func (uc *guestUseCaseImpl) LookupOrCreateGuest(ctx context.Context, in GuestInput) (*LookupOrCreateGuestResult, error) {
	name, nid, err := in.identity()
	if err != nil {
		return nil, err
	}

	var result *LookupOrCreateGuestResult
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Guests().FindByNationalID(ctx, nid)
		if derr == nil {
			result = &LookupOrCreateGuestResult{Guest: existing, ReturningCustomer: true}
			return nil
		}
		if !infra.IsKind(derr, infra.KindNotFound) {
			return fromRepo(derr, nil)
		}

		g := guest.NewGuest(name, nid, in.Phone, in.Address, uc.clock.Now())
		derr = tx.Guests().Create(ctx, g)
		if derr == nil {
			result = &LookupOrCreateGuestResult{Guest: g, ReturningCustomer: false}
			return nil
		}
		if !infra.IsKind(derr, infra.KindDuplicateKey) {
			return fromRepo(derr, nil)
		}

		existing, lerr := tx.Guests().FindByNationalID(ctx, nid)
		if lerr != nil {
			return errs.Mark(errs.Wrap(derr, "guest registered concurrently but not readable"), ErrDuplicateKey)
		}
		result = &LookupOrCreateGuestResult{Guest: existing, ReturningCustomer: true}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}
	return result, nil
}

func (uc *guestUseCaseImpl) UpdateGuest(ctx context.Context, id uuid.UUID, in GuestInput) (*guest.Guest, error) {
	name, nid, err := in.identity()
	if err != nil {
		return nil, err
	}

	var updated *guest.Guest
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, derr := tx.Guests().FindByID(ctx, id)
		if derr != nil {
			return fromRepo(derr, ErrGuestNotFound)
		}

		g.Edit(name, nid, in.Phone, in.Address, uc.clock.Now())
		if derr = tx.Guests().Update(ctx, g); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateKey)
			}
			return fromRepo(derr, ErrGuestNotFound)
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}
	return updated, nil
}

// DeleteGuest refuses to remove guests referenced by the stay history.
func (uc *guestUseCaseImpl) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inUse, derr := tx.Guests().HasStays(ctx, id)
		if derr != nil {
			return fromRepo(derr, nil)
		}
		if inUse {
			return ErrGuestInUse
		}

		if derr = tx.Guests().Delete(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrGuestInUse)
			}
			return fromRepo(derr, ErrGuestNotFound)
		}
		return nil
	})
	return settle(err)
}
