package converter

import (
	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/payment"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
)

func DepositToCreateParams(d *deposit.Deposit) sqlc.CreateDepositParams {
	return sqlc.CreateDepositParams{
		ID:     d.ID(),
		StayID: d.StayID(),
		Amount: pgconv.DecimalToNumeric(d.Amount()),
		Status: d.Status().String(),
		PaidAt: pgconv.TimeToPgtype(d.PaidAt()),
	}
}

func DepositToDomain(row sqlc.Deposits) (*deposit.Deposit, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return deposit.ReconstructDeposit(
		row.ID,
		row.StayID,
		amount,
		deposit.Status(row.Status),
		pgconv.TimeFromPgtype(row.PaidAt),
		pgconv.TimePtrFromPgtype(row.ReturnedAt),
	), nil
}

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:          p.ID(),
		StayID:      p.StayID(),
		Amount:      pgconv.DecimalToNumeric(p.Amount()),
		PaymentType: p.Type().String(),
		Method:      p.Method().String(),
		PaidAt:      pgconv.TimeToPgtype(p.PaidAt()),
	}
}
