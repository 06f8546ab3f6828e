// Package jobs provides scheduled background tasks for the custody ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CustodySnapshotJob summarizes the custody records of every lot type and
// publishes the counts as the supplychain_lots{type,status} gauges.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	snapshot := jobs.NewCustodySnapshotJob(summarizer, m, cfg.SnapshotSchedule, logger)
//	jobManager := jobs.NewJobManager(snapshot)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with a leading seconds field. The
// default "0 * * * * *" takes a snapshot every minute.
//
// # Error Handling
//
// A failed summary is logged and counted in
// supplychain_custody_snapshots_total{outcome="error"}; the gauges of that
// lot type keep their previous values until the next successful run.
package jobs
