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

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param status query string false "AVAILABLE, OCCUPIED or CLEANING"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]any
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var query reqdto.RoomListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err, "Invalid query")
		return
	}
	views, err := h.q.List(c.Request.Context(), query.Status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Register room
// @Description Add a room to the registry; new rooms start AVAILABLE
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /rooms [post]
func (h *RoomHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid request")
		return
	}
	r, err := h.cmds.RegisterRoom(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoom(r))
}

// @Summary Change room status
// @Description Housekeeping status change; a room held by a guest cannot be changed here
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomStatusRequest true "Status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /rooms/{id}/status [put]
func (h *RoomHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBindError(c, err, "Invalid id")
		return
	}
	var req reqdto.RoomStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortWithBindError(c, bindErr, "Invalid request")
		return
	}
	r, err := h.cmds.ChangeRoomStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoom(r))
}
