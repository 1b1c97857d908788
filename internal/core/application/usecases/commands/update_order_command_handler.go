package commands

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// UpdateOrderCommandHandler overwrites an existing order in place.
//
// Pipeline: order exists; body id absent or equal to the route id; stored
// order not delivered and requested status valid; deliverTo, mobileNumber and
// dishes present; every dish quantity valid.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     orderEvents
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     orderEvents{publisher: publisher, logger: logger.With("component", "update_order_handler")},
	}
}

// Handle returns the updated order. The status is written only when the
// body supplies one.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	in := cmd.Input()

	var (
		current *order.Order
		lines   []order.Line
	)
	stages := pipeline.Concat(
		[]pipeline.Stage{
			orderExists(repo, cmd.OrderID(), &current),
			pipeline.Check(func() error { return order.CheckIDMatchesRoute(in.ID, cmd.OrderID()) }),
			statusIsValid(&current, in.Status),
		},
		orderFieldStages(in, &lines),
	)
	if err := pipeline.Run(ctx, stages...); err != nil {
		return nil, err
	}

	if err := current.Revise(in.DeliverTo, in.MobileNumber, lines); err != nil {
		return nil, err
	}
	if in.Status != "" {
		if err := current.ChangeStatus(order.Status(in.Status)); err != nil {
			return nil, err
		}
	}

	if err := repo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.publish(ctx, order.EventUpdated, current)
	return current, nil
}
