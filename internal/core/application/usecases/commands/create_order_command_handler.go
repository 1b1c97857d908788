package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// CreateOrderCommandHandler validates a new order and appends it to the store
// in pending status.
//
// Pipeline: deliverTo, mobileNumber and dishes present; every dish quantity valid.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        ports.IDGenerator
	events     orderEvents
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	ids ports.IDGenerator,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		events:     orderEvents{publisher: publisher, logger: logger.With("component", "create_order_handler")},
	}
}

// Handle returns the stored order with its newly generated id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	in := cmd.Input()
	var lines []order.Line
	if err := pipeline.Run(ctx, orderFieldStages(in, &lines)...); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(h.ids.Next(), in.DeliverTo, in.MobileNumber, lines)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.publish(ctx, order.EventCreated, created)
	return created, nil
}
