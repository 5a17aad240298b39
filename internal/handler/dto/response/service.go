package response

import (
	"time"

	"elite-drive/internal/usecase/queries"
)

type ServiceAlertResponse struct {
	ID             string       `json:"_id"`
	CarID          string       `json:"car_id"`
	Date           time.Time    `json:"date"`
	Description    string       `json:"description"`
	Cost           float64      `json:"cost"`
	NextServiceDue bool         `json:"next_service_due"`
	CarDetails     *CarResponse `json:"car_details"`
}

func FromServiceAlerts(items []*queries.ServiceAlert) []*ServiceAlertResponse {
	res := make([]*ServiceAlertResponse, len(items))
	for i, it := range items {
		res[i] = &ServiceAlertResponse{
			ID:             it.ID.String(),
			CarID:          it.CarID.String(),
			Date:           it.Date,
			Description:    it.Description,
			Cost:           it.Cost,
			NextServiceDue: it.NextServiceDue,
			CarDetails:     FromCarView(it.Car),
		}
	}
	return res
}
