package testdrive

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer = errors.New("customer is required")
	ErrMissingCar      = errors.New("car is required")
	ErrMissingSlot     = errors.New("slot is required")
	ErrInvalidStatus   = errors.New("invalid test drive status")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusConfirmed:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// TestDrive is a booking of one showroom slot by one customer.
// carID duplicates the slot's car so history reads need no slot lookup.
type TestDrive struct {
	id         uuid.UUID
	customerID uuid.UUID
	carID      uuid.UUID
	slotID     uuid.UUID
	status     Status
	bookedAt   time.Time
}

func NewTestDrive(customerID, carID, slotID uuid.UUID, bookedAt time.Time) (*TestDrive, error) {
	switch {
	case customerID == uuid.Nil:
		return nil, ErrMissingCustomer
	case carID == uuid.Nil:
		return nil, ErrMissingCar
	case slotID == uuid.Nil:
		return nil, ErrMissingSlot
	}

	return &TestDrive{
		id:         uuid.New(),
		customerID: customerID,
		carID:      carID,
		slotID:     slotID,
		status:     StatusConfirmed,
		bookedAt:   bookedAt,
	}, nil
}

func (t *TestDrive) ID() uuid.UUID         { return t.id }
func (t *TestDrive) CustomerID() uuid.UUID { return t.customerID }
func (t *TestDrive) CarID() uuid.UUID      { return t.carID }
func (t *TestDrive) SlotID() uuid.UUID     { return t.slotID }
func (t *TestDrive) Status() Status        { return t.status }
func (t *TestDrive) BookedAt() time.Time   { return t.bookedAt }
