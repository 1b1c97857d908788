// Package jobs provides scheduled background tasks for the grubdash service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so schedules have
// six fields ("0 * * * * *" is once a minute).
//
// # Available Jobs
//
//  1. OrderStatusReportJob - logs the number of orders per status on the
//     configured schedule (REPORT_SCHEDULE, once a minute by default)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, cfg.ReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and the job keeps its schedule. An invalid
// schedule makes StartAll fail.
package jobs
