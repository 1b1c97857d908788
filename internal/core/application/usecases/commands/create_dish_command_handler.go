package commands

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// CreateDishCommandHandler validates a new dish and appends it to the store.
//
// Pipeline: name, description, price and image_url present; price valid.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
	ids        ports.IDGenerator
}

func NewCreateDishCommandHandler(uowFactory DishUoWFactory, ids ports.IDGenerator) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle returns the stored dish with its newly generated id.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	in := cmd.Input()
	var price int64
	if err := pipeline.Run(ctx, dishFieldStages(in, &price)...); err != nil {
		return nil, err
	}

	created, err := dish.NewDish(h.ids.Next(), in.Name, in.Description, price, in.ImageURL)
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

	if err = uow.DishRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
