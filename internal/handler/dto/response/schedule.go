package response

import (
	"encoding/json"
	"time"

	"elite-drive/internal/usecase/queries"
)

type SlotResponse struct {
	ID          string    `json:"_id"`
	CarID       string    `json:"car_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	if v == nil {
		return nil
	}
	return &SlotResponse{
		ID:          v.ID.String(),
		CarID:       v.CarID.String(),
		StartTime:   v.StartTime,
		EndTime:     v.EndTime,
		IsAvailable: v.IsAvailable,
	}
}

func FromSlotList(items []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(items))
	for i, it := range items {
		res[i] = FromSlotView(it)
	}
	return res
}

// SlotDetails is emitted only for bookings that reference a slot, and renders
// as null when that slot no longer exists.
type SlotDetails struct {
	*SlotResponse
}

func (d SlotDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.SlotResponse)
}
