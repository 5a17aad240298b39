package queries

import (
	"time"

	"github.com/google/uuid"
)

// CarView represents read-optimized car data
type CarView struct {
	ID       uuid.UUID      `json:"id"`
	Brand    string         `json:"brand"`
	Model    string         `json:"model"`
	Year     int            `json:"year"`
	Price    float64        `json:"price"`
	Specs    map[string]any `json:"specs"`
	Category string         `json:"category"`
}

// CustomerView represents read-optimized customer data
type CustomerView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	LoyaltyTier string    `json:"loyalty_tier"`
}

// SlotView represents one showroom viewing window
type SlotView struct {
	ID          uuid.UUID `json:"id"`
	CarID       uuid.UUID `json:"car_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}

// TestDriveView is a booking row as stored. SlotID is nil for legacy rows.
type TestDriveView struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	CarID      uuid.UUID  `json:"car_id"`
	SlotID     *uuid.UUID `json:"slot_id,omitempty"`
	Status     string     `json:"status"`
	BookedAt   time.Time  `json:"booked_at"`
}

// TestDriveDetail is a booking joined with whatever referenced rows still exist.
// A nil detail means the referenced row is gone (or was not looked up).
type TestDriveDetail struct {
	TestDriveView
	Car      *CarView      `json:"car_details"`
	Customer *CustomerView `json:"customer_details,omitempty"`
	Slot     *SlotView     `json:"slot_details,omitempty"`
}

// ServiceRecordView represents one service history entry
type ServiceRecordView struct {
	ID             uuid.UUID `json:"id"`
	CarID          uuid.UUID `json:"car_id"`
	Date           time.Time `json:"date"`
	Description    string    `json:"description"`
	Cost           float64   `json:"cost"`
	NextServiceDue bool      `json:"next_service_due"`
}

// ServiceAlert is a due service record with its car attached
type ServiceAlert struct {
	ServiceRecordView
	Car *CarView `json:"car_details"`
}
