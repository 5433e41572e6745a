// Package jobs provides the scheduled background tasks of the application,
// built on github.com/robfig/cron/v3. The only job today is the stale order
// sweep, which closes orders stuck past the delivery window.
package jobs

import (
	"fmt"
	"log/slog"

	"negoce/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderJob *StaleOrderJob
}

// NewJobManager wires the background jobs onto their command handlers.
func NewJobManager(
	closeStaleOrdersHandler commands.CloseStaleOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob: NewStaleOrderJob(closeStaleOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order sweep: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.staleOrderJob.Stop()
}
