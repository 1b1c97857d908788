package memory

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

type dishRepository struct {
	store *Store
	uow   *UnitOfWork
}

func (r *dishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.write(ctx, func() (func(), error) {
		return r.store.putDish(aggregate, true)
	})
}

func (r *dishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.write(ctx, func() (func(), error) {
		return r.store.putDish(aggregate, false)
	})
}

func (r *dishRepository) Get(ctx context.Context, id string) (*dish.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.getDish(id)
}

func (r *dishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.listDishes(), nil
}

func (r *dishRepository) write(ctx context.Context, apply func() (func(), error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.uow == nil {
		return r.store.autocommit(ctx, func(uow *UnitOfWork) error {
			return (&dishRepository{store: r.store, uow: uow}).write(ctx, apply)
		})
	}

	undo, err := apply()
	if err != nil {
		return err
	}
	r.uow.record(undo)
	return nil
}
