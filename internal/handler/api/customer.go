package api

import (
	"net/http"

	resdto "elite-drive/internal/handler/dto/response"
	"elite-drive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerQueries queries.CustomerQueries
}

func NewCustomerHandler(customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{customerQueries: customerQueries}
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Failure 500 {object} httperr.Response
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerQueries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerList(customers))
}

// @Summary Customer booking history
// @Description Bookings of one customer with car and slot details
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} resdto.TestDriveResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /customers/{id}/history [get]
func (h *CustomerHandler) History(c *gin.Context) {
	history, err := h.customerQueries.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistory(history))
}
