package schedule

import (
	"errors"
	"time"

	"elite-drive/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidHorizon  = errors.New("horizon must be at least one day")
	ErrInvalidSlotHour = errors.New("slot hour must be within 0-23")
	ErrInvalidDuration = errors.New("slot duration must be positive")
)

// Plan describes the rolling schedule every car gets: for each of HorizonDays
// days starting today, one slot at each of Hours lasting SlotDuration.
type Plan struct {
	HorizonDays  int
	Hours        []int
	SlotDuration time.Duration
}

func (p Plan) Validate() error {
	if p.HorizonDays < 1 {
		return ErrInvalidHorizon
	}
	if p.SlotDuration <= 0 {
		return ErrInvalidDuration
	}
	for _, h := range p.Hours {
		if h < 0 || h > 23 {
			return ErrInvalidSlotHour
		}
	}
	return nil
}

// Generate builds the slots of the plan for each car, day by day, in car order.
// Slots starting before notBefore are skipped; pass the zero time to keep all of them.
func (p Plan) Generate(carIDs []uuid.UUID, now, notBefore time.Time) ([]*Slot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	today := clock.StartOfDay(now)
	y, m, d := today.Date()
	slots := make([]*Slot, 0, len(carIDs)*p.HorizonDays*len(p.Hours))
	for _, carID := range carIDs {
		for day := 0; day < p.HorizonDays; day++ {
			for _, hour := range p.Hours {
				// wall-clock hour in now's location, also across DST changes
				start := time.Date(y, m, d+day, hour, 0, 0, 0, today.Location())
				if start.Before(notBefore) {
					continue
				}
				window, err := NewTimeWindow(start, start.Add(p.SlotDuration))
				if err != nil {
					return nil, err
				}
				slot, err := NewSlot(carID, window)
				if err != nil {
					return nil, err
				}
				slots = append(slots, slot)
			}
		}
	}
	return slots, nil
}
