package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeWindow = errors.New("start time must be before end time")
	ErrMissingCar        = errors.New("slot must belong to a car")
)

type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() time.Time        { return w.start }
func (w TimeWindow) End() time.Time          { return w.end }
func (w TimeWindow) Duration() time.Duration { return w.end.Sub(w.start) }

// Slot is a bookable showroom viewing window for one car.
// Availability only ever moves from true to false, through a store-side claim.
type Slot struct {
	id        uuid.UUID
	carID     uuid.UUID
	window    TimeWindow
	available bool
}

func NewSlot(carID uuid.UUID, window TimeWindow) (*Slot, error) {
	if carID == uuid.Nil {
		return nil, ErrMissingCar
	}
	return &Slot{
		id:        uuid.New(),
		carID:     carID,
		window:    window,
		available: true,
	}, nil
}

func ReconstructSlot(id, carID uuid.UUID, window TimeWindow, available bool) *Slot {
	return &Slot{
		id:        id,
		carID:     carID,
		window:    window,
		available: available,
	}
}

func (s *Slot) ID() uuid.UUID      { return s.id }
func (s *Slot) CarID() uuid.UUID   { return s.carID }
func (s *Slot) Window() TimeWindow { return s.window }
func (s *Slot) IsAvailable() bool  { return s.available }
