package jobs

import (
	"context"
	"log/slog"

	"negoce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically closes orders stuck past the delivery window.
// Runs every ten minutes; the sweep itself is idempotent, so an overlapping
// run at worst re-reads an already closed order book.
type StaleOrderJob struct {
	handler commands.CloseStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates the sweep job around its command handler.
func NewStaleOrderJob(handler commands.CloseStaleOrdersCommandHandler, logger *slog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start schedules the sweep every ten minutes.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCloseStaleOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep started (running every ten minutes)")
	return nil
}

// Stop stops the sweep job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep stopped")
}
