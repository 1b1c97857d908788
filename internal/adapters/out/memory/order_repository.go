package memory

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

type orderRepository struct {
	store *Store
	uow   *UnitOfWork
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.write(ctx, func() (func(), error) {
		return r.store.putOrder(aggregate, true)
	})
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.write(ctx, func() (func(), error) {
		return r.store.putOrder(aggregate, false)
	})
}

func (r *orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.getOrder(id)
}

func (r *orderRepository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.listOrders(), nil
}

func (r *orderRepository) Remove(ctx context.Context, id string) error {
	return r.write(ctx, func() (func(), error) {
		return r.store.removeOrder(id)
	})
}

func (r *orderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.countOrdersByStatus(), nil
}

func (r *orderRepository) write(ctx context.Context, apply func() (func(), error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.uow == nil {
		return r.store.autocommit(ctx, func(uow *UnitOfWork) error {
			return (&orderRepository{store: r.store, uow: uow}).write(ctx, apply)
		})
	}

	undo, err := apply()
	if err != nil {
		return err
	}
	r.uow.record(undo)
	return nil
}
