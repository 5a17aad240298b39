package api

import (
	"net/http"

	resdto "elite-drive/internal/handler/dto/response"
	"elite-drive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	serviceQueries queries.ServiceQueries
}

func NewServiceHandler(serviceQueries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{serviceQueries: serviceQueries}
}

// @Summary Service alerts
// @Description Service records flagged as due, with car details
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceAlertResponse
// @Failure 500 {object} httperr.Response
// @Router /services/due [get]
func (h *ServiceHandler) ListDue(c *gin.Context) {
	alerts, err := h.serviceQueries.ListDueAlerts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceAlerts(alerts))
}
