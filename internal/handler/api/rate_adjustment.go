package api

import (
	"net/http"

	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RateAdjustmentHandler struct {
	cmds commands.RateAdjustmentCommands
	q    queries.RateAdjustmentQueries
}

func NewRateAdjustmentHandler(cmds commands.RateAdjustmentCommands, q queries.RateAdjustmentQueries) *RateAdjustmentHandler {
	return &RateAdjustmentHandler{cmds: cmds, q: q}
}

// @Summary Create rate adjustment
// @Tags rate-adjustments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRateAdjustmentRequest true "Create rate adjustment request"
// @Success 200 {object} resdto.RateAdjustmentResponse
// @Failure 404 {object} httperr.Response "room type not found"
// @Failure 422 {object} httperr.Response
// @Router /rate-adjustments [post]
func (h *RateAdjustmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateRateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateAdjustment(created))
}

// @Summary List rate adjustments
// @Tags rate-adjustments
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} resdto.RateAdjustmentResponse
// @Router /rate-adjustments [get]
func (h *RateAdjustmentHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), page)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateAdjustmentViews(views))
}

// @Summary Get rate adjustment
// @Tags rate-adjustments
// @Produce json
// @Security BearerAuth
// @Param adjustment_id path int true "Rate adjustment ID"
// @Success 200 {object} resdto.RateAdjustmentResponse
// @Failure 404 {object} httperr.Response
// @Router /rate-adjustments/{adjustment_id} [get]
func (h *RateAdjustmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "adjustment_id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateAdjustmentView(view))
}

// @Summary Update rate adjustment
// @Tags rate-adjustments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adjustment_id path int true "Rate adjustment ID"
// @Param request body reqdto.UpdateRateAdjustmentRequest true "Update rate adjustment request"
// @Success 200 {object} resdto.RateAdjustmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rate-adjustments/{adjustment_id} [put]
func (h *RateAdjustmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "adjustment_id")
	if !ok {
		return
	}
	var req reqdto.UpdateRateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateAdjustment(updated))
}

// @Summary Delete rate adjustment
// @Tags rate-adjustments
// @Produce json
// @Security BearerAuth
// @Param adjustment_id path int true "Rate adjustment ID"
// @Success 200 {object} resdto.RateAdjustmentResponse
// @Failure 404 {object} httperr.Response
// @Router /rate-adjustments/{adjustment_id} [delete]
func (h *RateAdjustmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "adjustment_id")
	if !ok {
		return
	}
	removed, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateAdjustment(removed))
}
