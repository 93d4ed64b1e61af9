// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reconcileJob)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// ReconcileTotalsJob recomputes the stored total of every order that is not
// CONCLUIDO or CANCELADO, through the same command the API uses, acting as
// the system. It runs only when RECONCILE_SCHEDULE is set.
//
// # Error Handling
//
// A failure on one order is logged and the pass continues. Orders changed
// concurrently are skipped until the next run. Failed job starts stop any
// already running jobs.
package jobs
