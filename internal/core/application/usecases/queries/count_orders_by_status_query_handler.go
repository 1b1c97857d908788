package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

type CountOrdersByStatusQueryHandler struct {
	repo ports.OrderRepository
}

func NewCountOrdersByStatusQueryHandler(repo ports.OrderRepository) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{repo: repo}
}

// Handle returns one entry per status in lifecycle order, zeros included.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) ([]StatusCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	statuses := order.Statuses()
	result := make([]StatusCountResponse, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, StatusCountResponse{Status: status.String(), Count: counts[status]})
	}
	return result, nil
}
