package queries

import (
	"context"

	"elite-drive/internal/pkg/errs"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	ListAvailableForCar(ctx context.Context, carID string) ([]*SlotView, error)
}

type scheduleQueriesImpl struct {
	slots SlotReadStore
}

func NewScheduleQueries(slots SlotReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{slots: slots}
}

// ListAvailableForCar returns the car's open slots by start time. An unknown
// car simply has none.
func (q *scheduleQueriesImpl) ListAvailableForCar(ctx context.Context, carID string) ([]*SlotView, error) {
	id, err := ParseID(carID)
	if err != nil {
		return nil, err
	}
	return q.slots.ListAvailableByCar(ctx, id)
}

// ParseID parses a path or body identifier, marking failures as ErrInvalidIdentifier.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrapf(err, "malformed identifier %q", raw), errs.ErrInvalidIdentifier)
	}
	return id, nil
}
