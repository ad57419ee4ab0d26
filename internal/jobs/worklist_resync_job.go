package jobs

import (
	"context"
	"log/slog"

	"radiology/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// worklistResyncSchedule runs the resync every five minutes. Saves already
// stand locally; the retry only has to happen before the next worklist poll,
// not in real time.
const worklistResyncSchedule = "0 */5 * * * *"

// WorklistResyncJob periodically re-announces studies whose save-path
// worklist notification failed. An optimistic save keeps its local record on
// a refused or unreachable worklist, so the sync gap stays open until a
// retry closes it.
type WorklistResyncJob struct {
	handler commands.ResyncWorklistCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorklistResyncJob creates a job that retries failed worklist saves.
func NewWorklistResyncJob(handler commands.ResyncWorklistCommandHandler, logger *slog.Logger) *WorklistResyncJob {
	return &WorklistResyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "worklist_resync_job"),
	}
}

// Start schedules the resync job.
func (j *WorklistResyncJob) Start() error {
	_, err := j.cron.AddFunc(worklistResyncSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewResyncWorklistCommand()

		announced, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Partial progress still counts; individual notify errors are
			// joined, logged and retried on the next run.
			j.logger.ErrorContext(ctx, "Worklist resync run finished with errors",
				"announced", announced, "error", err)
			return
		}

		if announced > 0 {
			j.logger.InfoContext(ctx, "Worklist resync run finished", "announced", announced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Worklist resync job started",
		"schedule", worklistResyncSchedule)
	return nil
}

// Stop stops the resync job.
func (j *WorklistResyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Worklist resync job stopped")
}
