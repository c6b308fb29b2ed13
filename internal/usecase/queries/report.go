package queries

//go:generate mockgen -source=report.go -destination=../../../tests/mock/queries/report.go -package=queriesmock

import (
	"context"
	"time"

	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type ReportReadStore interface {
	StayTotals(ctx context.Context, p Period) (StayTotals, error)
	RevenueByType(ctx context.Context, p Period) ([]RevenueLine, error)
	DepositRetained(ctx context.Context, p Period) (decimal.Decimal, error)
	DailyBreakdown(ctx context.Context, p Period) ([]DailyLine, error)
	BedTypeBreakdown(ctx context.Context, p Period) ([]BedTypeLine, error)

	RoomsByStatus(ctx context.Context) (map[string]int64, error)
	CountCheckIns(ctx context.Context, p Period) (int64, error)
	CountCheckOuts(ctx context.Context, p Period) (int64, error)
	RoomRevenue(ctx context.Context, p Period) (decimal.Decimal, error)
	CountActiveStays(ctx context.Context) (int64, error)
}

type ReportQueries interface {
	Monthly(ctx context.Context, year, month int) (*MonthlyReport, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
	clock clock.Clock
	loc   *time.Location
}

// NewReportQueries buckets months and days on the calendar of loc.
func NewReportQueries(store ReportReadStore, clk clock.Clock, loc *time.Location) ReportQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &reportQueriesImpl{store: store, clock: clk, loc: loc}
}

func MonthPeriod(year, month int, loc *time.Location) Period {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(0, 1, 0), TimeZone: loc.String()}
}

func DayPeriod(t time.Time, loc *time.Location) Period {
	start := clock.StartOfDay(t, loc)
	return Period{Start: start, End: start.AddDate(0, 0, 1), TimeZone: loc.String()}
}

func (q *reportQueriesImpl) Monthly(ctx context.Context, year, month int) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, errs.Mark(errs.Newf("month %d out of range", month), ErrInvalidFilter)
	}
	if year < 2000 || year > 9999 {
		return nil, errs.Mark(errs.Newf("year %d out of range", year), ErrInvalidFilter)
	}
	p := MonthPeriod(year, month, q.loc)

	totals, err := q.store.StayTotals(ctx, p)
	if err != nil {
		return nil, err
	}
	revenue, err := q.store.RevenueByType(ctx, p)
	if err != nil {
		return nil, err
	}
	retained, err := q.store.DepositRetained(ctx, p)
	if err != nil {
		return nil, err
	}
	daily, err := q.store.DailyBreakdown(ctx, p)
	if err != nil {
		return nil, err
	}
	beds, err := q.store.BedTypeBreakdown(ctx, p)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range revenue {
		total = total.Add(line.Total)
	}

	return &MonthlyReport{
		Year:  year,
		Month: month,
		Summary: MonthlySummary{
			StayTotals:      totals,
			RevenueByType:   revenue,
			TotalRevenue:    total,
			DepositRetained: retained,
		},
		Daily:   daily,
		BedType: beds,
	}, nil
}

func (q *reportQueriesImpl) Dashboard(ctx context.Context) (*Dashboard, error) {
	today := DayPeriod(q.clock.Now(), q.loc)

	byStatus, err := q.store.RoomsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	checkIns, err := q.store.CountCheckIns(ctx, today)
	if err != nil {
		return nil, err
	}
	checkOuts, err := q.store.CountCheckOuts(ctx, today)
	if err != nil {
		return nil, err
	}
	revenue, err := q.store.RoomRevenue(ctx, today)
	if err != nil {
		return nil, err
	}
	active, err := q.store.CountActiveStays(ctx)
	if err != nil {
		return nil, err
	}

	counts := RoomCounts{
		Available: byStatus[room.StatusAvailable.String()],
		Occupied:  byStatus[room.StatusOccupied.String()],
		Cleaning:  byStatus[room.StatusCleaning.String()],
	}
	for _, n := range byStatus {
		counts.Total += n
	}

	return &Dashboard{
		Rooms:          counts,
		TodayCheckIns:  checkIns,
		TodayCheckOuts: checkOuts,
		TodayRevenue:   revenue,
		ActiveStays:    active,
	}, nil
}
