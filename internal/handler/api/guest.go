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

type GuestHandler struct {
	cmds commands.GuestCommands
	q    queries.GuestQueries
}

func NewGuestHandler(cmds commands.GuestCommands, q queries.GuestQueries) *GuestHandler {
	return &GuestHandler{cmds: cmds, q: q}
}

// @Summary List guests
// @Description Search guests by name, national id or phone
// @Tags guests
// @Produce json
// @Param search query string false "Free-text search"
// @Param national_id query string false "Exact national id"
// @Success 200 {array} resdto.GuestResponse
// @Failure 400 {object} map[string]any
// @Router /guests [get]
func (h *GuestHandler) List(c *gin.Context) {
	var query reqdto.GuestListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err, "Invalid query")
		return
	}
	views, err := h.q.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromGuestViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get guest
// @Tags guests
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
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
	res, err := resdto.FromGuestView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Register guest
// @Description Return the existing guest for a known national id, otherwise create one
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.GuestRequest true "Guest"
// @Success 200 {object} resdto.GuestLookupResponse "Returning customer"
// @Success 201 {object} resdto.GuestLookupResponse "New guest"
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /guests [post]
func (h *GuestHandler) Register(c *gin.Context) {
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid request")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	result, err := h.cmds.LookupOrCreateGuest(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	status := http.StatusCreated
	if result.ReturningCustomer {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromGuestLookup(result.Guest, result.ReturningCustomer))
}

// @Summary Update guest
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body reqdto.GuestRequest true "Guest"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /guests/{id} [put]
func (h *GuestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBindError(c, err, "Invalid id")
		return
	}
	var req reqdto.GuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortWithBindError(c, bindErr, "Invalid request")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	g, err := h.cmds.UpdateGuest(c.Request.Context(), id, in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuest(g))
}

// @Summary Delete guest
// @Description Delete a guest without stay history
// @Tags guests
// @Param id path string true "Guest ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /guests/{id} [delete]
func (h *GuestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBindError(c, err, "Invalid id")
		return
	}
	if err := h.cmds.DeleteGuest(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
