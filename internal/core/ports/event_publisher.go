package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other services.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
