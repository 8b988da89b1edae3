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

type RoomTypeHandler struct {
	cmds        commands.RoomTypeCommands
	q           queries.RoomTypeQueries
	adjustments queries.RateAdjustmentQueries
	rates       queries.EffectiveRateQueries
}

func NewRoomTypeHandler(
	cmds commands.RoomTypeCommands,
	q queries.RoomTypeQueries,
	adjustments queries.RateAdjustmentQueries,
	rates queries.EffectiveRateQueries,
) *RoomTypeHandler {
	return &RoomTypeHandler{
		cmds:        cmds,
		q:           q,
		adjustments: adjustments,
		rates:       rates,
	}
}

// @Summary Create room type
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Create room type request"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 404 {object} httperr.Response "hotel not found"
// @Failure 422 {object} httperr.Response
// @Router /room-types [post]
func (h *RoomTypeHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomType(created))
}

// @Summary List room types
// @Tags room-types
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /room-types [get]
func (h *RoomTypeHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), page)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary Get room type
// @Tags room-types
// @Produce json
// @Security BearerAuth
// @Param room_type_id path int true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 404 {object} httperr.Response
// @Router /room-types/{room_type_id} [get]
func (h *RoomTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "room_type_id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary Update room type
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room_type_id path int true "Room type ID"
// @Param request body reqdto.UpdateRoomTypeRequest true "Update room type request"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /room-types/{room_type_id} [put]
func (h *RoomTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "room_type_id")
	if !ok {
		return
	}
	var req reqdto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomType(updated))
}

// @Summary Delete room type
// @Description Also removes the room type's rate adjustments
// @Tags room-types
// @Produce json
// @Security BearerAuth
// @Param room_type_id path int true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 404 {object} httperr.Response
// @Router /room-types/{room_type_id} [delete]
func (h *RoomTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "room_type_id")
	if !ok {
		return
	}
	removed, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomType(removed))
}

// @Summary List rate adjustments of a room type
// @Tags room-types
// @Produce json
// @Security BearerAuth
// @Param room_type_id path int true "Room type ID"
// @Success 200 {array} resdto.RateAdjustmentResponse
// @Failure 404 {object} httperr.Response
// @Router /room-types/{room_type_id}/rate-adjustments [get]
func (h *RoomTypeHandler) ListRateAdjustments(c *gin.Context) {
	id, ok := pathID(c, "room_type_id")
	if !ok {
		return
	}
	views, err := h.adjustments.ListByRoomType(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateAdjustmentViews(views))
}

// @Summary Effective rate
// @Description Base rate plus the latest adjustment effective on or before the date
// @Tags room-types
// @Produce json
// @Security BearerAuth
// @Param room_type_id path int true "Room type ID"
// @Param date_str query string false "Target date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.EffectiveRateResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /room-types/{room_type_id}/effective-rate [get]
func (h *RoomTypeHandler) EffectiveRate(c *gin.Context) {
	id, ok := pathID(c, "room_type_id")
	if !ok {
		return
	}
	var q reqdto.EffectiveRateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortValidation(c, err)
		return
	}
	date, err := q.Date()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid date format. Use YYYY-MM-DD", nil)
		return
	}

	view, err := h.rates.Calculate(c.Request.Context(), id, date)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEffectiveRateView(view))
}
