// Package jobs provides scheduled background repairs for the tour store.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// take a ports.Locker lease before each run, so only one instance repairs at
// a time when several share a store.
//
// # Available Jobs
//
//  1. PrimaryImageReconcileJob - walks every tour and re-derives its primary
//     image from the images it owns. Repairs a crash between the insert and
//     the reconcile of an image add.
//  2. OrphanSweepJob - deletes dependent rows whose tour is gone. Completes a
//     delete cascade that failed part way through.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileJob, sweepJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed reconcile of one tour is logged and the walk continues
//   - A lease held by another instance skips the run silently
//   - Failed job starts will stop any already running jobs
package jobs
