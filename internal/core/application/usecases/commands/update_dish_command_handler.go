package commands

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
)

// UpdateDishCommandHandler overwrites an existing dish in place.
//
// Pipeline: dish exists; name, description, price and image_url present;
// price valid; body id absent or equal to the route id.
type UpdateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

func NewUpdateDishCommandHandler(uowFactory DishUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated dish.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
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

	repo := uow.DishRepository()
	in := cmd.Input()

	var (
		current *dish.Dish
		price   int64
	)
	stages := pipeline.Concat(
		[]pipeline.Stage{dishExists(repo, cmd.DishID(), &current)},
		dishFieldStages(in, &price),
		[]pipeline.Stage{pipeline.Check(func() error { return dish.CheckIDMatchesRoute(in.ID, cmd.DishID()) })},
	)
	if err := pipeline.Run(ctx, stages...); err != nil {
		return nil, err
	}

	if err := current.Revise(in.Name, in.Description, price, in.ImageURL); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
