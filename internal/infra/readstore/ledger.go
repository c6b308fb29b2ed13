package readstore

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/readstore/ledger.go -package=readstoremock

import (
	"context"

	"mansion-pos/internal/infra"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LedgerReadQueries interface {
	ListPayments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPaymentsParams) ([]sqlc.ListPaymentsRow, error)
	ListDeposits(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.ListDepositsRow, error)
}

type LedgerReadStore struct {
	queries LedgerReadQueries
	db      sqlc.DBTX
}

func NewLedgerReadStore(queries LedgerReadQueries, db sqlc.DBTX) *LedgerReadStore {
	return &LedgerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerReadStore) ListPayments(ctx context.Context, stayID *uuid.UUID, limit int32) ([]*queries.PaymentView, error) {
	params := sqlc.ListPaymentsParams{RowLimit: limit}
	if stayID != nil {
		params.StayID = pgtype.UUID{Bytes: *stayID, Valid: true}
	}

	rows, err := r.queries.ListPayments(ctx, r.db, params)
	if err != nil {
		return nil, infra.Classify("failed to list payments", err)
	}
	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.Classify("failed to decode payment amount", err)
		}
		views = append(views, &queries.PaymentView{
			ID:          row.ID,
			StayID:      row.StayID,
			Amount:      amount,
			PaymentType: row.PaymentType,
			Method:      row.Method,
			PaidAt:      pgconv.TimeFromPgtype(row.PaidAt),
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			RoomNumber:  row.RoomNumber,
		})
	}
	return views, nil
}

func (r *LedgerReadStore) ListDeposits(ctx context.Context, status *string) ([]*queries.DepositView, error) {
	rows, err := r.queries.ListDeposits(ctx, r.db, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.Classify("failed to list deposits", err)
	}
	views := make([]*queries.DepositView, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.Classify("failed to decode deposit amount", err)
		}
		views = append(views, &queries.DepositView{
			ID:         row.ID,
			StayID:     row.StayID,
			Amount:     amount,
			Status:     row.Status,
			PaidAt:     pgconv.TimeFromPgtype(row.PaidAt),
			ReturnedAt: pgconv.TimePtrFromPgtype(row.ReturnedAt),
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			RoomNumber: row.RoomNumber,
		})
	}
	return views, nil
}
