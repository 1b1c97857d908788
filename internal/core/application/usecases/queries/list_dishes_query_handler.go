package queries

import (
	"context"

	"grubdash/internal/core/ports"
)

// ListDishesQueryHandler reads every dish in insertion order.
type ListDishesQueryHandler struct {
	repo ports.DishRepository
}

func NewListDishesQueryHandler(repo ports.DishRepository) ListDishesQueryHandler {
	return ListDishesQueryHandler{repo: repo}
}

// Handle returns an empty, non-nil slice when the menu is empty.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]DishResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]DishResponse, 0, len(dishes))
	for _, d := range dishes {
		result = append(result, NewDishResponse(d))
	}
	return result, nil
}
