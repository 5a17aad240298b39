package components

import (
	"elite-drive/internal/domain/schedule"
	"elite-drive/internal/pkg/clock"
	"elite-drive/internal/pkg/config"
	"elite-drive/internal/usecase/commands"
	"elite-drive/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSchedulePlan,
	NewSeedOptions,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTestDriveCommands,
		commands.NewScheduleCommands,
		commands.NewSeedCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCarQueries,
		queries.NewScheduleQueries,
		queries.NewCustomerQueries,
		queries.NewBookingQueries,
		queries.NewServiceQueries,
	),
)

func NewSchedulePlan(cfg config.Config) (schedule.Plan, error) {
	hours, err := cfg.Schedule.Hours()
	if err != nil {
		return schedule.Plan{}, err
	}
	plan := schedule.Plan{
		HorizonDays:  cfg.Schedule.HorizonDays,
		Hours:        hours,
		SlotDuration: cfg.Schedule.SlotDuration,
	}
	if err := plan.Validate(); err != nil {
		return schedule.Plan{}, err
	}
	return plan, nil
}

func NewSeedOptions(cfg config.Config) commands.SeedOptions {
	return commands.SeedOptions{
		ServiceRecords: cfg.Seed.ServiceRecords,
		Bookings:       cfg.Seed.Bookings,
	}
}
