package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order from the store.
//
// Pipeline: order exists; order is pending.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     orderEvents
}

func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		events:     orderEvents{publisher: publisher, logger: logger.With("component", "delete_order_handler")},
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	var current *order.Order
	err := pipeline.Run(ctx,
		orderExists(repo, cmd.OrderID(), &current),
		pipeline.Check(func() error { return current.EnsureDeletable() }),
	)
	if err != nil {
		return err
	}

	if err = repo.Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.publish(ctx, order.EventDeleted, current)
	return nil
}
