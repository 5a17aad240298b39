package api

import (
	"net/http"

	resdto "elite-drive/internal/handler/dto/response"
	"elite-drive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{scheduleQueries: scheduleQueries}
}

// @Summary List open slots of a car
// @Tags schedules
// @Produce json
// @Param carId path string true "Car ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /schedules/car/{carId} [get]
func (h *ScheduleHandler) ListAvailableForCar(c *gin.Context) {
	slots, err := h.scheduleQueries.ListAvailableForCar(c.Request.Context(), c.Param("carId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotList(slots))
}
