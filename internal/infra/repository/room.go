package repository

//go:generate mockgen -source=room.go -destination=../../../tests/mock/repository/room.go -package=repositorymock

import (
	"context"

	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/infra/repository/converter"
	sqlc "mansion-pos/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetRoomByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
	UpdateRoomStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomStatusParams) (int64, error)
}

type RoomRepository struct {
	queries RoomQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.Classify("failed to lock room", err)
	}
	rm, err := converter.RoomToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(logger(), infra.KindDBFailure, "failed to decode room", err)
	}
	return rm, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(rm)); err != nil {
		return infra.Classify("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, rm *room.Room) error {
	affected, err := r.queries.UpdateRoomStatus(ctx, r.db, sqlc.UpdateRoomStatusParams{
		ID:     rm.ID(),
		Status: rm.Status().String(),
	})
	if err != nil {
		return infra.Classify("failed to update room status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(logger(), infra.KindNotFound, "room not found", nil)
	}
	return nil
}
