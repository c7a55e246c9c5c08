// Package jobs provides scheduled background tasks for the delivery add-on.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AssignmentRetryJob - Runs every minute to re-attempt courier assignment
// for pending home-delivery orders left without a courier (for example when
// no courier was on shift at ingestion time).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(unassignedOrdersHandler, assignCourierHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The retry job treats "no active couriers" as an expected condition: it stops
// the current run and waits for the next tick instead of logging once per
// backlog order.
package jobs
