//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"mansion-pos/internal/handler/api"
	reqdto "mansion-pos/internal/handler/dto/request"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/queries"
	"mansion-pos/tests/common/httptest"
	queriesmock "mansion-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)

	hotel := time.FixedZone("ICT", 7*60*60)
	// 23:30 UTC on Jan 31 is already February in the hotel.
	clk := clock.NewFixedClock(time.Date(2025, 1, 31, 23, 30, 0, 0, time.UTC))
	h := api.NewReportHandler(s.mockQueries, clk, hotel)

	s.router.GET("/reports/monthly", h.Monthly)
	s.router.GET("/dashboard", h.Dashboard)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestMonthly() {
	s.Run("explicit month", func() {
		s.mockQueries.EXPECT().Monthly(gomock.Any(), 2024, 12).
			Return(&queries.MonthlyReport{Year: 2024, Month: 12}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/monthly?year=2024&month=12", nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(12), body["month"])
	})

	s.Run("defaults to the current hotel month", func() {
		s.mockQueries.EXPECT().Monthly(gomock.Any(), 2025, 2).
			Return(&queries.MonthlyReport{Year: 2025, Month: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/monthly", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("month out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/monthly?year=2025&month=13", nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindValidation)
	})

	s.Run("invalid filter from the query layer", func() {
		s.mockQueries.EXPECT().Monthly(gomock.Any(), 2025, 1).
			Return(nil, errs.Mark(errs.New("bad"), queries.ErrInvalidFilter)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/monthly?year=2025&month=1", nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindValidation)
	})
}

func (s *ReportHandlerTestSuite) TestDashboard() {
	s.mockQueries.EXPECT().Dashboard(gomock.Any()).Return(&queries.Dashboard{
		Rooms:         queries.RoomCounts{Total: 9, Available: 5, Occupied: 3, Cleaning: 1},
		TodayCheckIns: 2,
		TodayRevenue:  decimal.NewFromInt(1200),
		ActiveStays:   3,
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil)

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("1200", body["today_revenue"])
	rooms := body["rooms"].(map[string]any)
	s.Equal(float64(3), rooms["occupied"])
}
