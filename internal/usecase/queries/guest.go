package queries

//go:generate mockgen -source=guest.go -destination=../../../tests/mock/queries/guest.go -package=queriesmock

import (
	"context"
	"strings"

	"mansion-pos/internal/infra"

	"github.com/google/uuid"
)

const MaxGuestList = 200

type GuestFilter struct {
	Search     string
	NationalID string
}

type GuestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	List(ctx context.Context, search, nationalID *string, limit int32) ([]*GuestView, error)
}

type GuestQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*GuestView, error)
	List(ctx context.Context, filter GuestFilter) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	store GuestReadStore
}

func NewGuestQueries(store GuestReadStore) GuestQueries {
	return &guestQueriesImpl{store: store}
}

func (q *guestQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	g, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return g, nil
}

// List returns the newest guests first. Search matches name, national id and
// phone; NationalID is an exact match.
func (q *guestQueriesImpl) List(ctx context.Context, filter GuestFilter) ([]*GuestView, error) {
	return q.store.List(ctx, optional(filter.Search), optional(filter.NationalID), MaxGuestList)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
