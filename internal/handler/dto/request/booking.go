package request

// BookTestDriveRequest carries raw identifiers; their format is checked by the
// booking use case so that a malformed id and a missing one map to different errors.
type BookTestDriveRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	CarID      string `json:"car_id" binding:"required"`
	SlotID     string `json:"slot_id" binding:"required"`
}
