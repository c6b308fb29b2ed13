package api

import (
	"io"
	"log/slog"
	"net/http"

	reqdto "mansion-pos/internal/handler/dto/request"
	resdto "mansion-pos/internal/handler/dto/response"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StayHandler struct {
	cmds commands.StayCommands
	q    queries.StayQueries
}

func NewStayHandler(cmds commands.StayCommands, q queries.StayQueries) *StayHandler {
	return &StayHandler{cmds: cmds, q: q}
}

// @Summary Check in
// @Description Allocate a room to a guest, take the room charge and the key deposit
// @Tags stays
// @Accept json
// @Produce json
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 201 {object} resdto.CheckInResponse
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /checkin [post]
func (h *StayHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.CheckIn(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	// The stay is committed at this point; a failed read only loses the guest
	// fields of the response.
	view, err := h.q.Get(c.Request.Context(), result.Stay.ID())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "check-in committed but stay view unavailable",
			"stay_id", result.Stay.ID().String(), "error", err.Error())
		view = nil
	}
	res, err := resdto.FromCheckIn(result, view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Check out
// @Description Close an active stay, charge late fees and settle the key deposit
// @Tags stays
// @Accept json
// @Produce json
// @Param stayId path string true "Stay ID"
// @Param request body reqdto.CheckOutRequest false "Check-out request"
// @Success 200 {object} resdto.CheckOutResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /checkout/{stayId} [post]
func (h *StayHandler) CheckOut(c *gin.Context) {
	stayID, err := uuid.Parse(c.Param("stayId"))
	if err != nil {
		abortWithBindError(c, err, "Invalid stay id")
		return
	}
	var req reqdto.CheckOutRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		abortWithBindError(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.CheckOut(c.Request.Context(), req.ToInput(stayID))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCheckOut(result)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Active stays
// @Description List stays that are currently checked in with their expected checkout
// @Tags stays
// @Produce json
// @Success 200 {array} resdto.StayResponse
// @Failure 500 {object} map[string]any
// @Router /stays/active [get]
func (h *StayHandler) ListActive(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.writeList(c, views)
}

// @Summary Recent stays
// @Description List the latest stays, newest check-in first
// @Tags stays
// @Produce json
// @Success 200 {array} resdto.StayResponse
// @Failure 500 {object} map[string]any
// @Router /stays [get]
func (h *StayHandler) ListRecent(c *gin.Context) {
	views, err := h.q.ListRecent(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.writeList(c, views)
}

// @Summary Get stay
// @Tags stays
// @Produce json
// @Param id path string true "Stay ID"
// @Success 200 {object} resdto.StayResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /stays/{id} [get]
func (h *StayHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBindError(c, err, "Invalid id")
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromStayView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *StayHandler) writeList(c *gin.Context, views []*queries.StayView) {
	res, err := resdto.FromStayViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// bindOptionalJSON accepts an empty body and leaves obj at its zero value.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	err := c.ShouldBindJSON(obj)
	if errs.Is(err, io.EOF) {
		return nil
	}
	return err
}
