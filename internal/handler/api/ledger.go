package api

import (
	"net/http"

	reqdto "mansion-pos/internal/handler/dto/request"
	resdto "mansion-pos/internal/handler/dto/response"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	deposits commands.DepositCommands
	q        queries.LedgerQueries
}

func NewLedgerHandler(deposits commands.DepositCommands, q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{deposits: deposits, q: q}
}

// @Summary List payments
// @Description Latest ledger entries, optionally for a single stay
// @Tags ledger
// @Produce json
// @Param stay_id query string false "Stay ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} map[string]any
// @Router /payments [get]
func (h *LedgerHandler) ListPayments(c *gin.Context) {
	var query reqdto.PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err, "Invalid query")
		return
	}
	var stayID *uuid.UUID
	if query.StayID != "" {
		id, err := uuid.Parse(query.StayID)
		if err != nil {
			abortWithBindError(c, err, "Invalid stay id")
			return
		}
		stayID = &id
	}
	views, err := h.q.ListPayments(c.Request.Context(), stayID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromPaymentViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List deposits
// @Tags ledger
// @Produce json
// @Param status query string false "PAID or RETURNED"
// @Success 200 {array} resdto.DepositResponse
// @Failure 400 {object} map[string]any
// @Router /deposits [get]
func (h *LedgerHandler) ListDeposits(c *gin.Context) {
	var query reqdto.DepositListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err, "Invalid query")
		return
	}
	views, err := h.q.ListDeposits(c.Request.Context(), query.Status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromDepositViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Return deposit
// @Description Refund the key deposit of a checked-out stay
// @Tags ledger
// @Accept json
// @Produce json
// @Param stayId path string true "Stay ID"
// @Param request body reqdto.ReturnDepositRequest false "Refund method"
// @Success 200 {object} resdto.DepositResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /deposits/{stayId}/return [post]
func (h *LedgerHandler) ReturnDeposit(c *gin.Context) {
	stayID, err := uuid.Parse(c.Param("stayId"))
	if err != nil {
		abortWithBindError(c, err, "Invalid stay id")
		return
	}
	var req reqdto.ReturnDepositRequest
	if bindErr := bindOptionalJSON(c, &req); bindErr != nil {
		abortWithBindError(c, bindErr, "Invalid request")
		return
	}
	d, err := h.deposits.ReturnDeposit(c.Request.Context(), req.ToInput(stayID))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeposit(d))
}
