package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"elite-drive/internal/pkg/config"
	"elite-drive/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const refreshTimeout = time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewCron,
	),
	fx.Invoke(RegisterScheduleRefresh),
)

// cronLogger routes cron's own logging into slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

func NewCron(lc fx.Lifecycle, logger *slog.Logger) *cron.Cron {
	c := cron.New(
		cron.WithLogger(cronLogger{logger: logger.With("component", "cron")}),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger}), cron.Recover(cronLogger{logger: logger})),
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return c
}

// RegisterScheduleRefresh keeps every car's viewing schedule filled up to the
// configured horizon. It runs once on start and then on SCHEDULE_REFRESH_CRON.
func RegisterScheduleRefresh(lc fx.Lifecycle, c *cron.Cron, cfg config.Config, schedules commands.ScheduleCommands, logger *slog.Logger) error {
	if !cfg.Schedule.RefreshEnabled {
		logger.Info("schedule refresh disabled")
		return nil
	}

	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		n, err := schedules.ExtendRollingSchedule(ctx)
		if err != nil {
			logger.Error("schedule refresh failed", "error", err)
			return
		}
		logger.Info("schedule refreshed", "inserted_slots", n)
	}

	if _, err := c.AddFunc(cfg.Schedule.RefreshCron, refresh); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go refresh()
			return nil
		},
	})
	return nil
}
