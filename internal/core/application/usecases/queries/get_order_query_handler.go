package queries

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle fails with a NotFound rule violation when no order has the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.repo.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderResponse{}, order.NotFoundError(query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}
