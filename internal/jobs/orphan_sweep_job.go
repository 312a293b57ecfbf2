package jobs

import (
	"context"
	"log/slog"
	"time"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const orphanSweepLockKey = "orphan-sweep"

// OrphanSweepJob removes dependents left behind by failed cascades.
type OrphanSweepJob struct {
	handler  commands.SweepOrphansCommandHandler
	locker   ports.Locker
	schedule string
	leaseTTL time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrphanSweepJob(
	handler commands.SweepOrphansCommandHandler,
	locker ports.Locker,
	schedule string,
	logger *slog.Logger,
) *OrphanSweepJob {
	return &OrphanSweepJob{
		handler:  handler,
		locker:   locker,
		schedule: schedule,
		leaseTTL: defaultLeaseTTL,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "orphan_sweep_job"),
	}
}

func (j *OrphanSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Orphan sweep job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan sweep job started", "schedule", j.schedule)
	return nil
}

func (j *OrphanSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Orphan sweep job stopped")
}

// RunOnce sweeps under the job lease. A lease held elsewhere returns an
// empty report.
func (j *OrphanSweepJob) RunOnce(ctx context.Context) (commands.SweepReport, error) {
	release, ok, err := j.locker.TryLock(ctx, orphanSweepLockKey, j.leaseTTL)
	if err != nil {
		return commands.SweepReport{}, err
	}
	if !ok {
		j.logger.DebugContext(ctx, "lease held by another instance, skipping run")
		return commands.SweepReport{}, nil
	}
	defer release()

	report, err := j.handler.Handle(ctx, commands.NewSweepOrphansCommand())
	if total := report.Total(); total > 0 {
		j.logger.InfoContext(ctx, "orphan sweep finished", "removed", total)
	}
	return report, err
}
