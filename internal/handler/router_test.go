//go:build unit

package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"mansion-pos/internal/handler"
	"mansion-pos/internal/handler/api"
	"mansion-pos/internal/handler/middleware"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/config"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/tests/common/httptest"
	commandsmock "mansion-pos/tests/mock/commands"
	queriesmock "mansion-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	engine   *gin.Engine
	stays    *commandsmock.MockStayCommands
	stayRead *queriesmock.MockStayQueries
}

func newRouter(t *testing.T) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := routerFixture{
		engine:   gin.New(),
		stays:    commandsmock.NewMockStayCommands(ctrl),
		stayRead: queriesmock.NewMockStayQueries(ctrl),
	}
	hotel := time.FixedZone("ICT", 7*60*60)
	h := handler.NewHandlers(
		api.NewStayHandler(f.stays, f.stayRead),
		api.NewGuestHandler(commandsmock.NewMockGuestCommands(ctrl), queriesmock.NewMockGuestQueries(ctrl)),
		api.NewRoomHandler(commandsmock.NewMockRoomCommands(ctrl), queriesmock.NewMockRoomQueries(ctrl)),
		api.NewLedgerHandler(commandsmock.NewMockDepositCommands(ctrl), queriesmock.NewMockLedgerQueries(ctrl)),
		api.NewReportHandler(queriesmock.NewMockReportQueries(ctrl), clock.NewFixedClock(time.Now()), hotel),
	)
	require.NoError(t, handler.NewRouter(f.engine, config.NewTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), h))
	return f
}

func TestRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		f := newRouter(t)
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("error envelope carries the kind", func(t *testing.T) {
		f := newRouter(t)
		f.stays.EXPECT().CheckOut(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no active stay"), commands.ErrStayNotFound))

		rec := httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/checkout/"+uuid.NewString(), nil)
		httptest.AssertErrorKind(t, rec, http.StatusNotFound, api.KindStayNotFound)
	})

	t.Run("panics become opaque 500s", func(t *testing.T) {
		f := newRouter(t)
		f.stayRead.EXPECT().ListActive(gomock.Any()).DoAndReturn(func(_ any) (any, error) {
			panic("nil map")
		})

		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/stays/active", nil)
		httptest.AssertErrorKind(t, rec, http.StatusInternalServerError, api.KindStorage)
	})

	t.Run("well formed caller request id is echoed", func(t *testing.T) {
		f := newRouter(t)
		for id, echoed := range map[string]bool{
			"desk-7-000123":           true,
			"has spaces; not allowed": false,
		} {
			req := nethttptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set(middleware.RequestIDHeader, id)
			rec := nethttptest.NewRecorder()
			f.engine.ServeHTTP(rec, req)

			got := rec.Header().Get(middleware.RequestIDHeader)
			if echoed {
				assert.Equal(t, id, got)
			} else {
				assert.NotEqual(t, id, got)
				assert.NotEmpty(t, got)
			}
		}
	})

	t.Run("static segment wins over stay id", func(t *testing.T) {
		f := newRouter(t)
		f.stayRead.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/stays/active", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
