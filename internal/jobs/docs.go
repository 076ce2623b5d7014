// Package jobs provides scheduled background tasks for the commerce system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Periodically cancels orders that entered checkout but were never paid
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, schedule, staleOrderTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cancellation job uses a standard 5-field cron expression supplied by
// configuration, "*/5 * * * *" by default. Orders sitting in ArrangingPayment
// for longer than the configured TTL are cancelled on each run.
//
// # Error Handling
//
// - A run with no stale orders is a no-op, not an error
// - All other handler errors are logged; the job keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs
