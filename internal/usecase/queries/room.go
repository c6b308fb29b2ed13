package queries

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/room.go -package=queriesmock

import (
	"context"

	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/pkg/errs"
)

type RoomReadStore interface {
	List(ctx context.Context, status *string) ([]*RoomView, error)
}

type RoomQueries interface {
	List(ctx context.Context, status string) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

// List orders rooms by number; an empty status returns every room.
func (q *roomQueriesImpl) List(ctx context.Context, status string) ([]*RoomView, error) {
	filter := optional(status)
	if filter != nil && !room.Status(*filter).IsValid() {
		return nil, errs.Mark(errs.Newf("unknown room status %q", *filter), ErrInvalidFilter)
	}
	return q.store.List(ctx, filter)
}
