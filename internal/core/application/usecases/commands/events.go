package commands

import (
	"context"
	"log/slog"
	"time"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// orderEvents publishes committed order changes. The change is already
// durable when publishing runs, so failures are logged rather than returned.
type orderEvents struct {
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func (e orderEvents) publish(ctx context.Context, kind order.EventKind, o *order.Order) {
	if e.publisher == nil {
		return
	}

	evt := order.NewEvent(kind, o, time.Now().UTC())
	if err := e.publisher.Publish(ctx, evt); err != nil {
		e.logger.WarnContext(ctx, "Failed to publish order event",
			"kind", kind, "order_id", o.ID(), "error", err)
	}
}
