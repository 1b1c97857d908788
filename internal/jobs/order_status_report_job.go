package jobs

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report at the start of every minute.
const DefaultReportSchedule = "0 * * * * *"

type statusCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) ([]queries.StatusCountResponse, error)
}

// OrderStatusReportJob periodically logs how many orders sit in each status.
type OrderStatusReportJob struct {
	handler  statusCounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusReportJob takes a six-field cron schedule (seconds first).
// An empty schedule means DefaultReportSchedule.
func NewOrderStatusReportJob(handler statusCounter, schedule string, logger *slog.Logger) *OrderStatusReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &OrderStatusReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_status_report_job"),
	}
}

func (j *OrderStatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderStatusReportJob) Run(ctx context.Context) {
	counts, err := j.handler.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order status report failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(counts)+2)
	total := 0
	for _, c := range counts {
		attrs = append(attrs, c.Status, c.Count)
		total += c.Count
	}
	attrs = append(attrs, "total", total)
	j.logger.InfoContext(ctx, "Order status report", attrs...)
}

// Stop waits for a running report to finish.
func (j *OrderStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status report job stopped")
}
