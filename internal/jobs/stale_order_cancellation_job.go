package jobs

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob cancels orders that were taken to checkout but
// never paid. Runs on a configurable cron schedule and cancels every order
// that has been awaiting payment for longer than the configured TTL.
type StaleOrderCancellationJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	ttl      time.Duration
	logger   *slog.Logger
}

// NewStaleOrderCancellationJob creates a new job for cancelling stale orders.
// The schedule is a standard 5-field cron expression; ttl is how old an
// unpaid order may grow, counted from its creation, before a run cancels it.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		ttl:      ttl,
		logger:   logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the stale order cancellation job on its schedule.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(time.Now().Add(-j.ttl))
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build stale order cancellation command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started", "schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
