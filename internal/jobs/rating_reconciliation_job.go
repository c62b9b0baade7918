package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"campusrun/internal/core/application/usecases/commands"
)

// RatingReconciliationJob periodically sweeps deliverer ratings back into
// line with the review data. The review command keeps ratings current on
// the hot path; this job repairs drift after manual data fixes.
type RatingReconciliationJob struct {
	handler  commands.RecalculateRatingsCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewRatingReconciliationJob creates the reconciliation job with a standard
// five-field cron schedule, for example "*/15 * * * *".
func NewRatingReconciliationJob(
	handler commands.RecalculateRatingsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RatingReconciliationJob {
	return &RatingReconciliationJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "rating_reconciliation_job"),
	}
}

// Start schedules the reconciliation sweep.
func (j *RatingReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewRecalculateRatingsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build recalculate ratings command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Rating reconciliation sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *RatingReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job stopped")
}
