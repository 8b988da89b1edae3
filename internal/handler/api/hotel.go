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

type HotelHandler struct {
	cmds      commands.HotelCommands
	q         queries.HotelQueries
	roomTypes queries.RoomTypeQueries
}

func NewHotelHandler(cmds commands.HotelCommands, q queries.HotelQueries, roomTypes queries.RoomTypeQueries) *HotelHandler {
	return &HotelHandler{cmds: cmds, q: q, roomTypes: roomTypes}
}

// @Summary Create hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Create hotel request"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response "name already registered"
// @Failure 422 {object} httperr.Response
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotel(created))
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), page)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotel_id path int true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotel_id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "hotel_id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Update hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotel_id path int true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Update hotel request"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotel_id} [put]
func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "hotel_id")
	if !ok {
		return
	}
	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, err)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotel(updated))
}

// @Summary Delete hotel
// @Description Refused while room types still reference the hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotel_id path int true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotel_id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "hotel_id")
	if !ok {
		return
	}
	removed, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotel(removed))
}

// @Summary List room types of a hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotel_id path int true "Hotel ID"
// @Success 200 {array} resdto.RoomTypeResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotel_id}/room-types [get]
func (h *HotelHandler) ListRoomTypes(c *gin.Context) {
	id, ok := pathID(c, "hotel_id")
	if !ok {
		return
	}
	views, err := h.roomTypes.ListByHotel(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}
