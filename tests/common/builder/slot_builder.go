//go:build unit || e2e

package builder

import (
	"time"

	"elite-drive/internal/domain/schedule"
	sqlc "elite-drive/internal/infra/sqlc/generated"
	"elite-drive/internal/pkg/pgconv"
	"elite-drive/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID          uuid.UUID
	CarID       uuid.UUID
	StartTime   time.Time
	Duration    time.Duration
	IsAvailable bool
}

func NewSlotBuilder() *SlotBuilder {
	start := time.Now().UTC().Truncate(time.Hour).Add(24 * time.Hour)
	return &SlotBuilder{
		ID:          uuid.New(),
		CarID:       uuid.New(),
		StartTime:   start,
		Duration:    time.Hour,
		IsAvailable: true,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() (*schedule.Slot, error) {
	window, err := schedule.NewTimeWindow(b.StartTime, b.StartTime.Add(b.Duration))
	if err != nil {
		return nil, err
	}
	return schedule.ReconstructSlot(b.ID, b.CarID, window, b.IsAvailable), nil
}

func (b *SlotBuilder) BuildInfra() sqlc.ShowroomSchedules {
	return sqlc.ShowroomSchedules{
		ID:          b.ID,
		CarID:       b.CarID,
		StartTime:   pgconv.TimeToPgtype(b.StartTime),
		EndTime:     pgconv.TimeToPgtype(b.StartTime.Add(b.Duration)),
		IsAvailable: b.IsAvailable,
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:          b.ID,
		CarID:       b.CarID,
		StartTime:   b.StartTime,
		EndTime:     b.StartTime.Add(b.Duration),
		IsAvailable: b.IsAvailable,
	}
}

// Fluent builder methods
func (b *SlotBuilder) ForCar(carID uuid.UUID) *SlotBuilder {
	b.CarID = carID
	return b
}

func (b *SlotBuilder) AsTaken() *SlotBuilder {
	b.IsAvailable = false
	return b
}
