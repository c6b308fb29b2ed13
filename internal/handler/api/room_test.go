//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/handler/api"
	reqdto "mansion-pos/internal/handler/dto/request"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"
	"mansion-pos/tests/common/builder"
	"mansion-pos/tests/common/httptest"
	commandsmock "mansion-pos/tests/mock/commands"
	queriesmock "mansion-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/rooms", h.List)
	s.router.POST("/rooms", h.Register)
	s.router.PUT("/rooms/:id/status", h.ChangeStatus)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("filters by status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "AVAILABLE").
			Return([]*queries.RoomView{builder.NewRoomBuilder().BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?status=AVAILABLE", nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("400", body[0]["price_per_day"])
	})

	s.Run("rejects unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?status=BROKEN", nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindValidation)
	})
}

func (s *RoomHandlerTestSuite) TestRegister() {
	rb := builder.NewRoomBuilder()

	s.Run("success", func() {
		s.mockCommands.EXPECT().RegisterRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RegisterRoomInput) (*room.Room, error) {
				s.Equal("101", in.Number)
				s.Equal("double", in.BedType)
				s.True(in.DailyRate.Equal(decimal.NewFromInt(400)))
				return rb.BuildDomain(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", map[string]any{
			"room_number":   "101",
			"bed_type":      "double",
			"price_per_day": 400,
		})

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("AVAILABLE", body["status"])
	})

	s.Run("rejects unknown bed type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", map[string]any{
			"room_number":   "102",
			"bed_type":      "king",
			"price_per_day": 400,
		})
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindValidation)
	})

	s.Run("duplicate room number", func() {
		s.mockCommands.EXPECT().RegisterRoom(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("room 101 exists"), commands.ErrDuplicateKey)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", map[string]any{
			"room_number":   "101",
			"bed_type":      "single",
			"price_per_day": "350.50",
		})
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, api.KindDuplicateKey)
	})
}

func (s *RoomHandlerTestSuite) TestChangeStatus() {
	rb := builder.NewRoomBuilder()
	url := "/rooms/" + rb.ID.String() + "/status"

	s.Run("cleaning to available", func() {
		s.mockCommands.EXPECT().ChangeRoomStatus(gomock.Any(), rb.ID, "AVAILABLE").
			Return(rb.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.RoomStatusRequest{Status: "AVAILABLE"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("room held by a guest", func() {
		s.mockCommands.EXPECT().ChangeRoomStatus(gomock.Any(), rb.ID, "CLEANING").
			Return(nil, errs.Mark(room.ErrUnavailable, commands.ErrRoomUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.RoomStatusRequest{Status: "CLEANING"})
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, api.KindRoomUnavailable)
	})

	s.Run("unknown room", func() {
		s.mockCommands.EXPECT().ChangeRoomStatus(gomock.Any(), rb.ID, "AVAILABLE").
			Return(nil, errs.Mark(errors.New("no room"), commands.ErrRoomNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.RoomStatusRequest{Status: "AVAILABLE"})
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, api.KindRoomNotFound)
	})

	s.Run("invalid status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.RoomStatusRequest{Status: "DIRTY"})
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindValidation)
	})
}
