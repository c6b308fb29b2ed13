package queries

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/queries/stay.go -package=queriesmock

import (
	"context"

	"mansion-pos/internal/domain/stay"
	"mansion-pos/internal/infra"

	"github.com/google/uuid"
)

const RecentStaysLimit = 100

type StayReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StayView, error)
	ListActive(ctx context.Context) ([]*StayView, error)
	ListRecent(ctx context.Context, limit int32) ([]*StayView, error)
}

type StayQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*StayView, error)
	ListActive(ctx context.Context) ([]*StayView, error)
	ListRecent(ctx context.Context) ([]*StayView, error)
}

type stayQueriesImpl struct {
	store  StayReadStore
	policy stay.FeePolicy
}

func NewStayQueries(store StayReadStore, policy stay.FeePolicy) StayQueries {
	return &stayQueriesImpl{store: store, policy: policy}
}

func (q *stayQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*StayView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStayNotFound
		}
		return nil, err
	}
	q.annotate(v)
	return v, nil
}

// ListActive returns checked-in stays ordered by room number.
func (q *stayQueriesImpl) ListActive(ctx context.Context) ([]*StayView, error) {
	views, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.annotate(v)
	}
	return views, nil
}

func (q *stayQueriesImpl) ListRecent(ctx context.Context) ([]*StayView, error) {
	views, err := q.store.ListRecent(ctx, RecentStaysLimit)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.annotate(v)
	}
	return views, nil
}

func (q *stayQueriesImpl) annotate(v *StayView) {
	if v.Status != stay.StatusCheckedIn.String() {
		return
	}
	expected := q.policy.ExpectedCheckout(v.CheckIn, stay.ReconstructPlannedDays(v.PlannedDays))
	v.ExpectedCheckout = &expected
}
