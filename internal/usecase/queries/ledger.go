package queries

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/queries/ledger.go -package=queriesmock

import (
	"context"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxPaymentList = 200

type LedgerReadStore interface {
	ListPayments(ctx context.Context, stayID *uuid.UUID, limit int32) ([]*PaymentView, error)
	ListDeposits(ctx context.Context, status *string) ([]*DepositView, error)
}

type LedgerQueries interface {
	ListPayments(ctx context.Context, stayID *uuid.UUID) ([]*PaymentView, error)
	ListDeposits(ctx context.Context, status string) ([]*DepositView, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
}

func NewLedgerQueries(store LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{store: store}
}

// ListPayments returns the latest ledger entries, optionally for one stay.
func (q *ledgerQueriesImpl) ListPayments(ctx context.Context, stayID *uuid.UUID) ([]*PaymentView, error) {
	return q.store.ListPayments(ctx, stayID, MaxPaymentList)
}

func (q *ledgerQueriesImpl) ListDeposits(ctx context.Context, status string) ([]*DepositView, error) {
	filter := optional(status)
	if filter != nil && !deposit.Status(*filter).IsValid() {
		return nil, errs.Mark(errs.Newf("unknown deposit status %q", *filter), ErrInvalidFilter)
	}
	return q.store.ListDeposits(ctx, filter)
}
