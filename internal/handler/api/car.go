package api

import (
	"net/http"

	resdto "elite-drive/internal/handler/dto/response"
	"elite-drive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	carQueries queries.CarQueries
}

func NewCarHandler(carQueries queries.CarQueries) *CarHandler {
	return &CarHandler{carQueries: carQueries}
}

// @Summary List cars
// @Description List every car in the showroom
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.CarResponse
// @Failure 500 {object} httperr.Response
// @Router /cars [get]
func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.carQueries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarList(cars))
}

// @Summary List cars by brand
// @Description Case-insensitive match on the whole brand name
// @Tags cars
// @Produce json
// @Param brand path string true "Brand name"
// @Success 200 {array} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cars/brand/{brand} [get]
func (h *CarHandler) ListByBrand(c *gin.Context) {
	cars, err := h.carQueries.ListByBrand(c.Request.Context(), c.Param("brand"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarList(cars))
}

// @Summary List cars with open slots
// @Description Cars that have at least one available viewing slot
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.CarResponse
// @Failure 500 {object} httperr.Response
// @Router /cars/availability [get]
func (h *CarHandler) ListWithAvailability(c *gin.Context) {
	cars, err := h.carQueries.ListWithAvailability(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarList(cars))
}
