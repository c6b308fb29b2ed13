package readstore

//go:generate mockgen -source=report.go -destination=../../../tests/mock/readstore/report.go -package=readstoremock

import (
	"context"

	"mansion-pos/internal/infra"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
	"mansion-pos/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ReportReadQueries interface {
	MonthlyStayTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.MonthlyStayTotalsParams) (sqlc.MonthlyStayTotalsRow, error)
	RevenueByType(ctx context.Context, db sqlc.DBTX, arg sqlc.RevenueByTypeParams) ([]sqlc.RevenueByTypeRow, error)
	DepositRetained(ctx context.Context, db sqlc.DBTX, arg sqlc.DepositRetainedParams) (pgtype.Numeric, error)
	DailyBreakdown(ctx context.Context, db sqlc.DBTX, arg sqlc.DailyBreakdownParams) ([]sqlc.DailyBreakdownRow, error)
	BedTypeBreakdown(ctx context.Context, db sqlc.DBTX, arg sqlc.BedTypeBreakdownParams) ([]sqlc.BedTypeBreakdownRow, error)
	CountRoomsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountRoomsByStatusRow, error)
	CountCheckInsBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCheckInsBetweenParams) (int64, error)
	CountCheckOutsBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCheckOutsBetweenParams) (int64, error)
	RoomRevenueBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.RoomRevenueBetweenParams) (pgtype.Numeric, error)
	CountActiveStays(ctx context.Context, db sqlc.DBTX) (int64, error)
}

// ReportReadStore runs each aggregate as its own statement; reports are
// snapshots and do not need a shared transaction.
type ReportReadStore struct {
	queries ReportReadQueries
	db      sqlc.DBTX
}

func NewReportReadStore(queries ReportReadQueries, db sqlc.DBTX) *ReportReadStore {
	return &ReportReadStore{
		queries: queries,
		db:      db,
	}
}

func bounds(p queries.Period) (pgtype.Timestamptz, pgtype.Timestamptz) {
	return pgconv.TimeToPgtype(p.Start), pgconv.TimeToPgtype(p.End)
}

func (r *ReportReadStore) StayTotals(ctx context.Context, p queries.Period) (queries.StayTotals, error) {
	start, end := bounds(p)
	row, err := r.queries.MonthlyStayTotals(ctx, r.db, sqlc.MonthlyStayTotalsParams{PeriodStart: start, PeriodEnd: end})
	if err != nil {
		return queries.StayTotals{}, infra.Classify("failed to count stays", err)
	}
	return queries.StayTotals{
		TotalGuests: row.TotalGuests,
		TotalStays:  row.TotalStays,
		RoomsUsed:   row.RoomsUsed,
	}, nil
}

func (r *ReportReadStore) RevenueByType(ctx context.Context, p queries.Period) ([]queries.RevenueLine, error) {
	start, end := bounds(p)
	rows, err := r.queries.RevenueByType(ctx, r.db, sqlc.RevenueByTypeParams{PeriodStart: start, PeriodEnd: end})
	if err != nil {
		return nil, infra.Classify("failed to sum revenue", err)
	}
	lines := make([]queries.RevenueLine, 0, len(rows))
	for _, row := range rows {
		total, err := decodeSum(row.Total)
		if err != nil {
			return nil, err
		}
		lines = append(lines, queries.RevenueLine{PaymentType: row.PaymentType, Total: total})
	}
	return lines, nil
}

func (r *ReportReadStore) DepositRetained(ctx context.Context, p queries.Period) (decimal.Decimal, error) {
	start, end := bounds(p)
	n, err := r.queries.DepositRetained(ctx, r.db, sqlc.DepositRetainedParams{PeriodStart: start, PeriodEnd: end})
	if err != nil {
		return decimal.Zero, infra.Classify("failed to sum retained deposits", err)
	}
	return decodeSum(n)
}

func (r *ReportReadStore) DailyBreakdown(ctx context.Context, p queries.Period) ([]queries.DailyLine, error) {
	start, end := bounds(p)
	rows, err := r.queries.DailyBreakdown(ctx, r.db, sqlc.DailyBreakdownParams{
		TimeZone:    p.TimeZone,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		return nil, infra.Classify("failed to build daily breakdown", err)
	}
	lines := make([]queries.DailyLine, 0, len(rows))
	for _, row := range rows {
		revenue, err := decodeSum(row.Revenue)
		if err != nil {
			return nil, err
		}
		lines = append(lines, queries.DailyLine{
			Date:     row.Day.Time.Format("2006-01-02"),
			CheckIns: row.CheckIns,
			Guests:   row.Guests,
			Revenue:  revenue,
		})
	}
	return lines, nil
}

func (r *ReportReadStore) BedTypeBreakdown(ctx context.Context, p queries.Period) ([]queries.BedTypeLine, error) {
	start, end := bounds(p)
	rows, err := r.queries.BedTypeBreakdown(ctx, r.db, sqlc.BedTypeBreakdownParams{PeriodStart: start, PeriodEnd: end})
	if err != nil {
		return nil, infra.Classify("failed to build bed type breakdown", err)
	}
	lines := make([]queries.BedTypeLine, 0, len(rows))
	for _, row := range rows {
		revenue, err := decodeSum(row.Revenue)
		if err != nil {
			return nil, err
		}
		lines = append(lines, queries.BedTypeLine{BedType: row.BedType, Stays: row.Stays, Revenue: revenue})
	}
	return lines, nil
}

func (r *ReportReadStore) RoomsByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.queries.CountRoomsByStatus(ctx, r.db)
	if err != nil {
		return nil, infra.Classify("failed to count rooms", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.RoomCount
	}
	return counts, nil
}

func (r *ReportReadStore) CountCheckIns(ctx context.Context, p queries.Period) (int64, error) {
	start, end := bounds(p)
	n, err := r.queries.CountCheckInsBetween(ctx, r.db, sqlc.CountCheckInsBetweenParams{PeriodStart: start, PeriodEnd: end})
	if err != nil {
		return 0, infra.Classify("failed to count check-ins", err)
	}
	return n, nil
}

func (r *ReportReadStore) CountCheckOuts(ctx context.Context, p queries.Period) (int64, error) {
	start, end := bounds(p)
	n, err := r.queries.CountCheckOutsBetween(ctx, r.db, sqlc.CountCheckOutsBetweenParams{PeriodStart: start, PeriodEnd: end})
	if err != nil {
		return 0, infra.Classify("failed to count check-outs", err)
	}
	return n, nil
}

func (r *ReportReadStore) RoomRevenue(ctx context.Context, p queries.Period) (decimal.Decimal, error) {
	start, end := bounds(p)
	n, err := r.queries.RoomRevenueBetween(ctx, r.db, sqlc.RoomRevenueBetweenParams{PeriodStart: start, PeriodEnd: end})
	if err != nil {
		return decimal.Zero, infra.Classify("failed to sum room revenue", err)
	}
	return decodeSum(n)
}

func (r *ReportReadStore) CountActiveStays(ctx context.Context) (int64, error) {
	n, err := r.queries.CountActiveStays(ctx, r.db)
	if err != nil {
		return 0, infra.Classify("failed to count active stays", err)
	}
	return n, nil
}

func decodeSum(n pgtype.Numeric) (decimal.Decimal, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return decimal.Zero, infra.Classify("failed to decode sum", err)
	}
	return d, nil
}
