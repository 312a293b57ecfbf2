package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const reconcileLockKey = "primary-image-reconcile"

// ReconcileReport summarizes one walk over all tours.
type ReconcileReport struct {
	Checked  int
	Repaired int
	Failed   int
}

// PrimaryImageReconcileJob re-runs the primary-image reconcile for every
// tour on a schedule.
type PrimaryImageReconcileJob struct {
	tourIDs   queries.ListTourIDsQueryHandler
	reconcile commands.ReconcilePrimaryImageCommandHandler
	locker    ports.Locker
	schedule  string
	leaseTTL  time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewPrimaryImageReconcileJob(
	tourIDs queries.ListTourIDsQueryHandler,
	reconcile commands.ReconcilePrimaryImageCommandHandler,
	locker ports.Locker,
	schedule string,
	logger *slog.Logger,
) *PrimaryImageReconcileJob {
	return &PrimaryImageReconcileJob{
		tourIDs:   tourIDs,
		reconcile: reconcile,
		locker:    locker,
		schedule:  schedule,
		leaseTTL:  defaultLeaseTTL,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "primary_image_reconcile_job"),
	}
}

// Start registers the job on its schedule.
func (j *PrimaryImageReconcileJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Primary image reconcile job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Primary image reconcile job started", "schedule", j.schedule)
	return nil
}

func (j *PrimaryImageReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Primary image reconcile job stopped")
}

// RunOnce walks all tours under the job lease. A lease held elsewhere
// returns an empty report.
func (j *PrimaryImageReconcileJob) RunOnce(ctx context.Context) (ReconcileReport, error) {
	var report ReconcileReport

	release, ok, err := j.locker.TryLock(ctx, reconcileLockKey, j.leaseTTL)
	if err != nil {
		return report, err
	}
	if !ok {
		j.logger.DebugContext(ctx, "lease held by another instance, skipping run")
		return report, nil
	}
	defer release()

	ids, err := j.tourIDs.Handle(ctx, queries.NewListTourIDsQuery())
	if err != nil {
		return report, err
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Checked++

		cmd, cmdErr := commands.NewReconcilePrimaryImageCommand(id)
		if cmdErr != nil {
			return report, cmdErr
		}

		changed, reconcileErr := j.reconcile.Handle(ctx, cmd)
		switch {
		case errors.Is(reconcileErr, errs.ErrObjectNotFound):
			// deleted since listing
		case reconcileErr != nil:
			report.Failed++
			j.logger.ErrorContext(ctx, "reconcile failed", "tourId", id.String(), "error", reconcileErr)
		case changed:
			report.Repaired++
			j.logger.InfoContext(ctx, "primary image repaired", "tourId", id.String())
		}
	}

	if report.Repaired > 0 || report.Failed > 0 {
		j.logger.InfoContext(ctx, "reconcile run finished",
			"checked", report.Checked, "repaired", report.Repaired, "failed", report.Failed)
	}
	return report, nil
}
