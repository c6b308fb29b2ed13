//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"mansion-pos/internal/domain/stay"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/queries"
	queriesmock "mansion-pos/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var hotel = time.FixedZone("ICT", 7*60*60)

func notFound() error {
	return infra.RepositoryError{Kind: infra.KindNotFound}
}

func TestGuestQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("missing guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockGuestReadStore(ctrl)
		store.EXPECT().FindByID(ctx, gomock.Any()).Return(nil, notFound())

		_, err := queries.NewGuestQueries(store).Get(ctx, uuid.New())
		assert.True(t, errs.Is(err, queries.ErrGuestNotFound))
	})

	t.Run("blank filters are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockGuestReadStore(ctrl)
		store.EXPECT().
			List(ctx, gomock.Nil(), gomock.Eq(ptr("3100")), int32(queries.MaxGuestList)).
			Return([]*queries.GuestView{{FirstName: "Malee"}}, nil)

		got, err := queries.NewGuestQueries(store).List(ctx, queries.GuestFilter{Search: "  ", NationalID: " 3100 "})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestRoomAndLedgerFilters(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	rooms := queriesmock.NewMockRoomReadStore(ctrl)
	ledger := queriesmock.NewMockLedgerReadStore(ctrl)

	_, err := queries.NewRoomQueries(rooms).List(ctx, "BROKEN")
	assert.True(t, errs.Is(err, queries.ErrInvalidFilter))

	_, err = queries.NewLedgerQueries(ledger).ListDeposits(ctx, "LOST")
	assert.True(t, errs.Is(err, queries.ErrInvalidFilter))

	rooms.EXPECT().List(ctx, gomock.Eq(ptr("CLEANING"))).Return(nil, nil)
	_, err = queries.NewRoomQueries(rooms).List(ctx, "CLEANING")
	assert.NoError(t, err)

	ledger.EXPECT().ListDeposits(ctx, gomock.Nil()).Return(nil, nil)
	_, err = queries.NewLedgerQueries(ledger).ListDeposits(ctx, "")
	assert.NoError(t, err)

	stayID := uuid.New()
	ledger.EXPECT().ListPayments(ctx, &stayID, int32(queries.MaxPaymentList)).Return(nil, nil)
	_, err = queries.NewLedgerQueries(ledger).ListPayments(ctx, &stayID)
	assert.NoError(t, err)
}

func TestStayQueries(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, hotel)
	policy := stay.NewFeePolicy(hotel)

	t.Run("active stays carry the expected check-out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockStayReadStore(ctrl)
		closedAt := checkIn.Add(20 * time.Hour)
		store.EXPECT().ListRecent(ctx, int32(queries.RecentStaysLimit)).Return([]*queries.StayView{
			{CheckIn: checkIn, PlannedDays: 2, Status: "CHECKED_IN"},
			{CheckIn: checkIn, PlannedDays: 1, Status: "CHECKED_OUT", CheckOut: &closedAt},
		}, nil)

		got, err := queries.NewStayQueries(store, policy).ListRecent(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, got[0].ExpectedCheckout)
		assert.Equal(t, time.Date(2025, 3, 12, 12, 0, 0, 0, hotel), *got[0].ExpectedCheckout)
		assert.Nil(t, got[1].ExpectedCheckout)
	})

	t.Run("missing stay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockStayReadStore(ctrl)
		store.EXPECT().FindByID(ctx, gomock.Any()).Return(nil, notFound())

		_, err := queries.NewStayQueries(store, policy).Get(ctx, uuid.New())
		assert.True(t, errs.Is(err, queries.ErrStayNotFound))
	})
}

func TestMonthlyReport(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFixedClock(time.Date(2025, 3, 15, 10, 0, 0, 0, hotel))

	t.Run("aggregates the hotel month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReportReadStore(ctrl)
		want := queries.Period{
			Start:    time.Date(2025, 2, 1, 0, 0, 0, 0, hotel),
			End:      time.Date(2025, 3, 1, 0, 0, 0, 0, hotel),
			TimeZone: "ICT",
		}

		store.EXPECT().StayTotals(ctx, want).Return(queries.StayTotals{TotalGuests: 3, TotalStays: 4, RoomsUsed: 2}, nil)
		store.EXPECT().RevenueByType(ctx, want).Return([]queries.RevenueLine{
			{PaymentType: "DEPOSIT", Total: decimal.NewFromInt(400)},
			{PaymentType: "DEPOSIT_RETURN", Total: decimal.NewFromInt(-300)},
			{PaymentType: "ROOM_CHARGE", Total: decimal.NewFromInt(1600)},
		}, nil)
		store.EXPECT().DepositRetained(ctx, want).Return(decimal.NewFromInt(100), nil)
		store.EXPECT().DailyBreakdown(ctx, want).Return([]queries.DailyLine{{Date: "2025-02-03", CheckIns: 4}}, nil)
		store.EXPECT().BedTypeBreakdown(ctx, want).Return(nil, nil)

		report, err := queries.NewReportQueries(store, clk, hotel).Monthly(ctx, 2025, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(4), report.Summary.TotalStays)
		assert.True(t, decimal.NewFromInt(1700).Equal(report.Summary.TotalRevenue))
		assert.True(t, decimal.NewFromInt(100).Equal(report.Summary.DepositRetained))
		assert.Len(t, report.Daily, 1)
	})

	t.Run("out of range month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReportReadStore(ctrl)

		for _, month := range []int{0, 13} {
			_, err := queries.NewReportQueries(store, clk, hotel).Monthly(ctx, 2025, month)
			assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
		}
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReportReadStore(ctrl)

	// 01:30 in the hotel is still the previous day in UTC.
	clk := clock.NewFixedClock(time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC))
	today := queries.Period{
		Start:    time.Date(2025, 3, 15, 0, 0, 0, 0, hotel),
		End:      time.Date(2025, 3, 16, 0, 0, 0, 0, hotel),
		TimeZone: "ICT",
	}

	store.EXPECT().RoomsByStatus(ctx).Return(map[string]int64{"AVAILABLE": 5, "OCCUPIED": 3, "CLEANING": 1}, nil)
	store.EXPECT().CountCheckIns(ctx, today).Return(int64(2), nil)
	store.EXPECT().CountCheckOuts(ctx, today).Return(int64(1), nil)
	store.EXPECT().RoomRevenue(ctx, today).Return(decimal.NewFromInt(1200), nil)
	store.EXPECT().CountActiveStays(ctx).Return(int64(3), nil)

	got, err := queries.NewReportQueries(store, clk, hotel).Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, queries.RoomCounts{Total: 9, Available: 5, Occupied: 3, Cleaning: 1}, got.Rooms)
	assert.Equal(t, int64(2), got.TodayCheckIns)
	assert.Equal(t, int64(1), got.TodayCheckOuts)
	assert.True(t, decimal.NewFromInt(1200).Equal(got.TodayRevenue))
	assert.Equal(t, int64(3), got.ActiveStays)
}

func ptr(s string) *string { return &s }
