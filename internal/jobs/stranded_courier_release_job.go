package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StrandedCourierReleaseJob periodically sweeps the courier pool for couriers
// that are marked busy while no open order references them and returns them
// to the available pool.
type StrandedCourierReleaseJob struct {
	handler commands.ReleaseStrandedCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStrandedCourierReleaseJob creates a new job for the stranded courier
// sweep. Uses ReleaseStrandedCouriersCommandHandler to process the sweep once
// a minute.
func NewStrandedCourierReleaseJob(handler commands.ReleaseStrandedCouriersCommandHandler, logger *slog.Logger) *StrandedCourierReleaseJob {
	return &StrandedCourierReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stranded_courier_release_job"),
	}
}

// Start begins the stranded courier sweep to run every minute.
func (j *StrandedCourierReleaseJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseStrandedCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stranded courier release job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stranded courier release job started (running every minute)")
	return nil
}

// Stop stops the stranded courier sweep.
func (j *StrandedCourierReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stranded courier release job stopped")
}
