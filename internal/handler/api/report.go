package api

import (
	"net/http"
	"time"

	reqdto "mansion-pos/internal/handler/dto/request"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/pkg/patch"
	"mansion-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q     queries.ReportQueries
	clock clock.Clock
	loc   *time.Location
}

func NewReportHandler(q queries.ReportQueries, clk clock.Clock, loc *time.Location) *ReportHandler {
	return &ReportHandler{q: q, clock: clk, loc: loc}
}

// @Summary Monthly report
// @Description Guests, stays, revenue by payment type, retained deposits, daily and bed-type breakdowns
// @Tags reports
// @Produce json
// @Param year query int false "Year (defaults to the current hotel year)"
// @Param month query int false "Month 1-12 (defaults to the current hotel month)"
// @Success 200 {object} queries.MonthlyReport
// @Failure 400 {object} map[string]any
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	var query reqdto.MonthlyReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err, "Invalid query")
		return
	}
	now := h.clock.Now().In(h.loc)
	year := patch.Coalesce(query.Year, now.Year())
	month := patch.Coalesce(query.Month, int(now.Month()))
	report, err := h.q.Monthly(c.Request.Context(), year, month)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Dashboard
// @Description Room counts by status and today's activity on the hotel calendar
// @Tags reports
// @Produce json
// @Success 200 {object} queries.Dashboard
// @Router /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dash, err := h.q.Dashboard(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
