package commands

import (
	"context"
	"log/slog"

	"elite-drive/internal/domain/schedule"
	"elite-drive/internal/pkg/clock"
	"elite-drive/internal/pkg/errs"
)

type ScheduleCommands interface {
	// ExtendRollingSchedule tops up every car's schedule to the plan horizon.
	// Existing slots are left untouched; it returns the number of new slots.
	ExtendRollingSchedule(ctx context.Context) (int, error)
}

type scheduleCommandsImpl struct {
	showroom ShowroomRepository
	slots    SlotRepository
	plan     schedule.Plan
	clock    clock.Clock
}

func NewScheduleCommands(showroom ShowroomRepository, slots SlotRepository, plan schedule.Plan, clk clock.Clock) ScheduleCommands {
	return &scheduleCommandsImpl{
		showroom: showroom,
		slots:    slots,
		plan:     plan,
		clock:    clk,
	}
}

func (uc *scheduleCommandsImpl) ExtendRollingSchedule(ctx context.Context) (int, error) {
	carIDs, err := uc.showroom.ListCarIDs(ctx)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(carIDs) == 0 {
		return 0, nil
	}

	now := uc.clock.Now()
	slots, err := uc.plan.Generate(carIDs, now, now)
	if err != nil {
		return 0, errs.Wrap(err, "invalid schedule plan")
	}

	inserted, err := uc.slots.InsertMany(ctx, slots)
	if err != nil {
		return inserted, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("rolling schedule extended", "cars", len(carIDs), "candidates", len(slots), "inserted", inserted)
	return inserted, nil
}
