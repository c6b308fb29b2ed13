package repository

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/repository/stay.go -package=repositorymock

import (
	"context"
	"log/slog"

	"mansion-pos/internal/domain/stay"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/infra/repository/converter"
	sqlc "mansion-pos/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type StayQueries interface {
	CreateStay(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStayParams) error
	GetActiveStayByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Stays, error)
	CloseStay(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseStayParams) (int64, error)
}

type StayRepository struct {
	queries StayQueries
	db      sqlc.DBTX
}

func NewStayRepository(queries StayQueries, db sqlc.DBTX) *StayRepository {
	return &StayRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StayRepository) Create(ctx context.Context, s *stay.Stay) error {
	if err := r.queries.CreateStay(ctx, r.db, converter.StayToCreateParams(s)); err != nil {
		return infra.Classify("failed to create stay", err)
	}
	return nil
}

func (r *StayRepository) FindActiveByIDForUpdate(ctx context.Context, id uuid.UUID) (*stay.Stay, error) {
	row, err := r.queries.GetActiveStayByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.Classify("failed to lock active stay", err)
	}
	return converter.StayToDomain(row), nil
}

// Close only matches a stay that is still CHECKED_IN.
func (r *StayRepository) Close(ctx context.Context, s *stay.Stay) error {
	affected, err := r.queries.CloseStay(ctx, r.db, converter.StayToCloseParams(s))
	if err != nil {
		return infra.Classify("failed to close stay", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(logger(), infra.KindNotFound, "active stay not found", nil)
	}
	return nil
}

func logger() *slog.Logger {
	return slog.Default()
}
