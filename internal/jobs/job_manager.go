package jobs

import (
	"fmt"
	"time"
)

// defaultLeaseTTL bounds how long a crashed instance can block the others.
const defaultLeaseTTL = 5 * time.Minute

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconcileJob *PrimaryImageReconcileJob
	sweepJob     *OrphanSweepJob
}

func NewJobManager(reconcileJob *PrimaryImageReconcileJob, sweepJob *OrphanSweepJob) *JobManager {
	return &JobManager{
		reconcileJob: reconcileJob,
		sweepJob:     sweepJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reconcileJob.Start(); err != nil {
		return fmt.Errorf("failed to start primary image reconcile job: %w", err)
	}

	if err := jm.sweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.reconcileJob.Stop()
		return fmt.Errorf("failed to start orphan sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.sweepJob.Stop()
	jm.reconcileJob.Stop()
}
