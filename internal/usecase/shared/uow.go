package shared

import (
	"context"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/guest"
	"mansion-pos/internal/domain/payment"
	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/domain/stay"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statements using implicit transactions. A failed statement
	// does not abort the ones that follow it.
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Guests() GuestRepository
	Rooms() RoomRepository
	Stays() StayRepository
	Deposits() DepositRepository
	Payments() PaymentRepository
}

// Repositories report failures as infra.RepositoryError so callers can branch
// on the kind (NOT_FOUND, DUPLICATE_KEY, ...).

type GuestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
	FindByNationalID(ctx context.Context, nationalID guest.NationalID) (*guest.Guest, error)
	Create(ctx context.Context, g *guest.Guest) error
	Update(ctx context.Context, g *guest.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error
	HasStays(ctx context.Context, id uuid.UUID) (bool, error)
}

type RoomRepository interface {
	// FindByIDForUpdate row-locks the room until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Create(ctx context.Context, r *room.Room) error
	UpdateStatus(ctx context.Context, r *room.Room) error
}

type StayRepository interface {
	Create(ctx context.Context, s *stay.Stay) error
	// FindActiveByIDForUpdate only matches CHECKED_IN stays.
	FindActiveByIDForUpdate(ctx context.Context, id uuid.UUID) (*stay.Stay, error)
	Close(ctx context.Context, s *stay.Stay) error
}

type DepositRepository interface {
	Create(ctx context.Context, d *deposit.Deposit) error
	FindByStayIDForUpdate(ctx context.Context, stayID uuid.UUID) (*deposit.Deposit, error)
	MarkReturned(ctx context.Context, d *deposit.Deposit) error
}

// PaymentRepository is append-only.
type PaymentRepository interface {
	Append(ctx context.Context, p *payment.Payment) error
}
