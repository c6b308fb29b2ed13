//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"mansion-pos/internal/handler/api"
	reqdto "mansion-pos/internal/handler/dto/request"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"
	"mansion-pos/tests/common/builder"
	"mansion-pos/tests/common/httptest"
	"mansion-pos/tests/common/testutil"
	commandsmock "mansion-pos/tests/mock/commands"
	queriesmock "mansion-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StayHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockStayCommands
	mockQueries  *queriesmock.MockStayQueries
	handler      *api.StayHandler
}

func (s *StayHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockStayCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockStayQueries(s.mockCtrl)
	s.handler = api.NewStayHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/checkin", s.handler.CheckIn)
	s.router.POST("/checkout/:stayId", s.handler.CheckOut)
	s.router.GET("/stays", s.handler.ListRecent)
	s.router.GET("/stays/active", s.handler.ListActive)
	s.router.GET("/stays/:id", s.handler.Get)
}

func (s *StayHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStayHandlerSuite(t *testing.T) {
	suite.Run(t, new(StayHandlerTestSuite))
}

type testCaseStay struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCheckIn
// ================================================================================

func (s *StayHandlerTestSuite) TestCheckIn() {
	url := "/checkin"

	sb := builder.NewStayBuilder()
	days := 2
	reqBody := reqdto.CheckInRequest{
		GuestID:       sb.Guest.ID,
		RoomID:        sb.Room.ID,
		PaymentMethod: "TRANSFER",
		PlannedDays:   &days,
	}
	result := sb.BuildCheckInResult()
	view := sb.BuildView()

	s.Run("success: returns 201 with the stay and the amounts taken", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), commands.CheckInInput{
			GuestID:       sb.Guest.ID,
			RoomID:        sb.Room.ID,
			PaymentMethod: "TRANSFER",
			PlannedDays:   &days,
		}).Return(result, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), sb.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("800", body["room_charge"])
		s.Equal("100", body["deposit"])
		s.Equal("900", body["total_paid"])
		stay := body["stay"].(map[string]any)
		s.Equal(sb.ID.String(), stay["id"])
		s.Equal("101", stay["room_number"])
		s.Equal("PAID", stay["deposit_status"])
	})

	s.Run("committed check-in still returns 201 when the stay view read fails", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), sb.ID).
			Return(nil, errs.Mark(errors.New("conn reset"), commands.ErrStorage)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("900", body["total_paid"])
		stay := body["stay"].(map[string]any)
		s.Equal(sb.ID.String(), stay["id"])
		s.Equal("101", stay["room_number"])
		s.Equal("CHECKED_IN", stay["status"])
		s.Equal("PAID", stay["deposit_status"])
		s.NotContains(rec.Body.String(), "conn reset")
	})

	validation := []testCaseStay{
		{name: "missing guest_id", mutate: testutil.Field("guest_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
		{name: "malformed guest_id", mutate: testutil.Field("guest_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "unknown payment method", mutate: testutil.Field("payment_method", "BITCOIN"), expectCode: http.StatusBadRequest},
		{name: "planned_days zero", mutate: testutil.Field("planned_days", 0), expectCode: http.StatusBadRequest},
		{name: "planned_days above a year", mutate: testutil.Field("planned_days", 366), expectCode: http.StatusBadRequest},
		{name: "planned_days at upper bound", mutate: testutil.Field("planned_days", 365), expectCode: http.StatusCreated},
		{name: "payment method omitted", mutate: testutil.Field("payment_method", nil), expectCode: http.StatusCreated},
	}

	s.Run("request validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)
					s.mockQueries.EXPECT().Get(gomock.Any(), sb.ID).Return(view, nil).Times(1)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorKind(s.T(), rec, tc.expectCode, api.KindValidation)
				}
			})
		}
	})

	s.Run("error: maps usecase errors to kinds", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			kind   string
		}{
			{"room unavailable", errs.Mark(errors.New("room 101 is OCCUPIED"), commands.ErrRoomUnavailable), http.StatusConflict, api.KindRoomUnavailable},
			{"validation", errs.Mark(errors.New("guest not found"), commands.ErrValidation), http.StatusBadRequest, api.KindValidation},
			{"storage", errs.Mark(errors.New("connection reset"), commands.ErrStorage), http.StatusInternalServerError, api.KindStorage},
			{"unclassified", errors.New("boom"), http.StatusInternalServerError, api.KindStorage},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorKind(s.T(), rec, tc.status, tc.kind)
			})
		}
	})

	s.Run("error: storage failures do not leak details", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("pq: password authentication failed"), commands.ErrStorage)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "password")
	})
}

// ================================================================================
// TestCheckOut
// ================================================================================

func (s *StayHandlerTestSuite) TestCheckOut() {
	stayID := uuid.New()
	url := "/checkout/" + stayID.String()
	result := &commands.CheckOutResult{
		StayID:                stayID,
		RoomNumber:            "101",
		ExtraDays:             1,
		LateFee:               decimal.NewFromInt(400),
		DepositReturned:       true,
		TotalAdditionalCharge: decimal.NewFromInt(300),
	}

	s.Run("success: returns the settlement", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), commands.CheckOutInput{
			StayID:        stayID,
			KeyReturned:   true,
			PaymentMethod: "CASH",
		}).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CheckOutRequest{KeyReturned: true, PaymentMethod: "CASH"})

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Check-out successful", body["message"])
		s.Equal(stayID.String(), body["stay_id"])
		s.Equal(float64(1), body["extra_days"])
		s.Equal("400", body["late_fee"])
		s.Equal(true, body["deposit_returned"])
		s.Equal("300", body["total_additional_charge"])
	})

	s.Run("success: empty body keeps the key and pays cash", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), commands.CheckOutInput{StayID: stayID}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: malformed stay id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/abc", nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindValidation)
	})

	s.Run("error: stay not active", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no active stay"), commands.ErrStayNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, api.KindStayNotFound)
	})
}

// ================================================================================
// Read endpoints
// ================================================================================

func (s *StayHandlerTestSuite) TestReads() {
	sb := builder.NewStayBuilder()
	view := sb.BuildView()

	s.Run("active stays", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return([]*queries.StayView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stays/active", nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(sb.Guest.FirstName, body[0]["first_name"])
	})

	s.Run("recent stays empty list", func() {
		s.mockQueries.EXPECT().ListRecent(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stays", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("get stay", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), sb.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stays/"+sb.ID.String(), nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CHECKED_IN", body["status"])
	})

	s.Run("get unknown stay", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, queries.ErrStayNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stays/"+uuid.NewString(), nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, api.KindStayNotFound)
	})
}
