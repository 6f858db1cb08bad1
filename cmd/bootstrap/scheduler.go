package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RegisterSweepJob),
)

func NewScheduler(lc fx.Lifecycle) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Shutdown()
		},
	})

	return scheduler, nil
}

// RegisterSweepJob schedules the reservation completion sweep. The
// sweep is idempotent so an overlapping run is harmless; singleton mode
// just avoids wasted work.
func RegisterSweepJob(scheduler gocron.Scheduler, cfg config.Config, sweep usecase.SweepCommands) error {
	_, err := scheduler.NewJob(
		gocron.CronJob(cfg.Sweep.Cron, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			completed, err := sweep.CompleteElapsed(ctx)
			if err != nil {
				slog.Error("completion sweep failed", "error", err.Error())
				return
			}
			if completed > 0 {
				slog.Info("completion sweep finished", "completed", completed)
			}
		}),
		gocron.WithName("reservation-completion-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeWait),
	)
	return err
}
