package repository

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/repository/ledger.go -package=repositorymock

import (
	"context"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/payment"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/infra/repository/converter"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DepositQueries interface {
	CreateDeposit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDepositParams) error
	GetDepositByStayIDForUpdate(ctx context.Context, db sqlc.DBTX, stayID uuid.UUID) (sqlc.Deposits, error)
	MarkDepositReturned(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkDepositReturnedParams) (int64, error)
}

type DepositRepository struct {
	queries DepositQueries
	db      sqlc.DBTX
}

func NewDepositRepository(queries DepositQueries, db sqlc.DBTX) *DepositRepository {
	return &DepositRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DepositRepository) Create(ctx context.Context, d *deposit.Deposit) error {
	if err := r.queries.CreateDeposit(ctx, r.db, converter.DepositToCreateParams(d)); err != nil {
		return infra.Classify("failed to create deposit", err)
	}
	return nil
}

func (r *DepositRepository) FindByStayIDForUpdate(ctx context.Context, stayID uuid.UUID) (*deposit.Deposit, error) {
	row, err := r.queries.GetDepositByStayIDForUpdate(ctx, r.db, stayID)
	if err != nil {
		return nil, infra.Classify("failed to lock deposit", err)
	}
	d, err := converter.DepositToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(logger(), infra.KindDBFailure, "failed to decode deposit", err)
	}
	return d, nil
}

// MarkReturned flips a PAID deposit to RETURNED. A deposit that is already
// returned is reported as not found.
func (r *DepositRepository) MarkReturned(ctx context.Context, d *deposit.Deposit) error {
	affected, err := r.queries.MarkDepositReturned(ctx, r.db, sqlc.MarkDepositReturnedParams{
		ID:         d.ID(),
		ReturnedAt: pgconv.TimePtrToPgtype(d.ReturnedAt()),
	})
	if err != nil {
		return infra.Classify("failed to return deposit", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(logger(), infra.KindNotFound, "paid deposit not found", nil)
	}
	return nil
}

type PaymentQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
}

type PaymentRepository struct {
	queries PaymentQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Append(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p)); err != nil {
		return infra.Classify("failed to record payment", err)
	}
	return nil
}
