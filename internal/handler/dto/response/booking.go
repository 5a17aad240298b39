package response

import (
	"time"

	"elite-drive/internal/usecase/commands"
	"elite-drive/internal/usecase/queries"
)

const BookingConfirmedMessage = "Booking confirmed"

type BookTestDriveResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}

func FromBookTestDriveResult(r *commands.BookTestDriveResult) *BookTestDriveResponse {
	return &BookTestDriveResponse{
		Message:   BookingConfirmedMessage,
		BookingID: r.BookingID.String(),
	}
}

// TestDriveResponse is a booking in customer history: car and slot attached.
type TestDriveResponse struct {
	ID          string       `json:"_id"`
	CustomerID  string       `json:"customer_id"`
	CarID       string       `json:"car_id"`
	SlotID      *string      `json:"slot_id,omitempty"`
	Status      string       `json:"status"`
	BookedAt    time.Time    `json:"booked_at"`
	CarDetails  *CarResponse `json:"car_details"`
	SlotDetails *SlotDetails `json:"slot_details,omitempty"`
}

// BookingResponse is a booking in the full listing, which also carries the customer.
type BookingResponse struct {
	TestDriveResponse
	CustomerDetails *CustomerResponse `json:"customer_details"`
}

func FromTestDriveDetail(d *queries.TestDriveDetail) *TestDriveResponse {
	res := &TestDriveResponse{
		ID:         d.ID.String(),
		CustomerID: d.CustomerID.String(),
		CarID:      d.CarID.String(),
		Status:     d.Status,
		BookedAt:   d.BookedAt,
		CarDetails: FromCarView(d.Car),
	}
	if d.SlotID != nil {
		slotID := d.SlotID.String()
		res.SlotID = &slotID
		res.SlotDetails = &SlotDetails{SlotResponse: FromSlotView(d.Slot)}
	}
	return res
}

func FromHistory(items []*queries.TestDriveDetail) []*TestDriveResponse {
	res := make([]*TestDriveResponse, len(items))
	for i, it := range items {
		res[i] = FromTestDriveDetail(it)
	}
	return res
}

func FromBookingList(items []*queries.TestDriveDetail) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = &BookingResponse{
			TestDriveResponse: *FromTestDriveDetail(it),
			CustomerDetails:   FromCustomerView(it.Customer),
		}
	}
	return res
}
