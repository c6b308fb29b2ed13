package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mansion-pos/internal/handler/api"
	reqdto "mansion-pos/internal/handler/dto/request"
	"mansion-pos/internal/handler/middleware"
	"mansion-pos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Stay   *api.StayHandler
	Guest  *api.GuestHandler
	Room   *api.RoomHandler
	Ledger *api.LedgerHandler
	Report *api.ReportHandler
}

func NewHandlers(stay *api.StayHandler, guest *api.GuestHandler, room *api.RoomHandler, ledger *api.LedgerHandler, report *api.ReportHandler) Handlers {
	return Handlers{Stay: stay, Guest: guest, Room: room, Ledger: ledger, Report: report}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/checkin", Handler: h.Stay.CheckIn},
			{Method: http.MethodPost, Path: "/checkout/:stayId", Handler: h.Stay.CheckOut},
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Report.Dashboard},
		})

		addRoutes(apiGroup.Group("/guests"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Guest.List},
			{Method: http.MethodPost, Path: "", Handler: h.Guest.Register},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Guest.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Guest.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Guest.Delete},
		})

		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodPost, Path: "", Handler: h.Room.Register},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Room.ChangeStatus},
		})

		addRoutes(apiGroup.Group("/stays"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Stay.ListRecent},
			{Method: http.MethodGet, Path: "/active", Handler: h.Stay.ListActive},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Stay.Get},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/payments", Handler: h.Ledger.ListPayments},
			{Method: http.MethodGet, Path: "/deposits", Handler: h.Ledger.ListDeposits},
			{Method: http.MethodPost, Path: "/deposits/:stayId/return", Handler: h.Ledger.ReturnDeposit},
			{Method: http.MethodGet, Path: "/reports/monthly", Handler: h.Report.Monthly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
