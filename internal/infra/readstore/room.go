package readstore

//go:generate mockgen -source=room.go -destination=../../../tests/mock/readstore/room.go -package=readstoremock

import (
	"context"

	"mansion-pos/internal/infra"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
	"mansion-pos/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadQueries interface {
	ListRooms(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) List(ctx context.Context, status *string) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.Classify("failed to list rooms", err)
	}
	views := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.DecimalFromNumeric(row.PricePerDay)
		if err != nil {
			return nil, infra.Classify("failed to decode room rate", err)
		}
		views = append(views, &queries.RoomView{
			ID:          row.ID,
			RoomNumber:  row.RoomNumber,
			BedType:     row.BedType,
			PricePerDay: price,
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}
