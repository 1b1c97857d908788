package queries

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"
)

type GetDishQueryHandler struct {
	repo ports.DishRepository
}

func NewGetDishQueryHandler(repo ports.DishRepository) GetDishQueryHandler {
	return GetDishQueryHandler{repo: repo}
}

// Handle fails with a NotFound rule violation when no dish has the id.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (DishResponse, error) {
	if err := query.Validate(); err != nil {
		return DishResponse{}, err
	}

	d, err := h.repo.Get(ctx, query.DishID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return DishResponse{}, dish.NotFoundError(query.DishID())
	}
	if err != nil {
		return DishResponse{}, err
	}

	return NewDishResponse(d), nil
}
