package repository

//go:generate mockgen -source=guest.go -destination=../../../tests/mock/repository/guest.go -package=repositorymock

import (
	"context"

	"mansion-pos/internal/domain/guest"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/infra/repository/converter"
	sqlc "mansion-pos/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type GuestQueries interface {
	GetGuestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Guests, error)
	GetGuestByNationalID(ctx context.Context, db sqlc.DBTX, nationalID string) (sqlc.Guests, error)
	CreateGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGuestParams) error
	UpdateGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGuestParams) (int64, error)
	DeleteGuest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CountStaysByGuest(ctx context.Context, db sqlc.DBTX, guestID uuid.UUID) (int64, error)
}

type GuestRepository struct {
	queries GuestQueries
	db      sqlc.DBTX
}

func NewGuestRepository(queries GuestQueries, db sqlc.DBTX) *GuestRepository {
	return &GuestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	row, err := r.queries.GetGuestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Classify("failed to find guest by id", err)
	}
	return converter.GuestToDomain(row), nil
}

func (r *GuestRepository) FindByNationalID(ctx context.Context, nationalID guest.NationalID) (*guest.Guest, error) {
	row, err := r.queries.GetGuestByNationalID(ctx, r.db, nationalID.Value())
	if err != nil {
		return nil, infra.Classify("failed to find guest by national id", err)
	}
	return converter.GuestToDomain(row), nil
}

func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	if err := r.queries.CreateGuest(ctx, r.db, converter.GuestToCreateParams(g)); err != nil {
		return infra.Classify("failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) Update(ctx context.Context, g *guest.Guest) error {
	affected, err := r.queries.UpdateGuest(ctx, r.db, converter.GuestToUpdateParams(g))
	if err != nil {
		return infra.Classify("failed to update guest", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(logger(), infra.KindNotFound, "guest not found", nil)
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteGuest(ctx, r.db, id)
	if err != nil {
		return infra.Classify("failed to delete guest", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(logger(), infra.KindNotFound, "guest not found", nil)
	}
	return nil
}

func (r *GuestRepository) HasStays(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := r.queries.CountStaysByGuest(ctx, r.db, id)
	if err != nil {
		return false, infra.Classify("failed to count guest stays", err)
	}
	return count > 0, nil
}
