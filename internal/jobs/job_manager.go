// Package jobs provides scheduled background tasks for the radiology module,
// implemented with github.com/robfig/cron/v3.
//
// The only job today is WorklistResyncJob, which re-announces studies left in
// a failed save synchronization status. Jobs are managed through JobManager,
// which starts and stops them as a group.
package jobs

import (
	"fmt"
	"log/slog"

	"radiology/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	worklistResyncJob *WorklistResyncJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	resyncHandler commands.ResyncWorklistCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		worklistResyncJob: NewWorklistResyncJob(resyncHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.worklistResyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start worklist resync job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.worklistResyncJob.Stop()
}
