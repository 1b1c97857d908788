package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatusReportJob *OrderStatusReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(statusCounter statusCounter, reportSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderStatusReportJob: NewOrderStatusReportJob(statusCounter, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatusReportJob.Stop()
}
