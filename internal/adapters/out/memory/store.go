// Package memory provides the in-process resource store. Dishes and orders
// live in maps with their insertion order kept alongside. Writes go through a
// unit of work; only one unit of work is active at a time, which serializes
// read-validate-write sequences across concurrent requests.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"

	"golang.org/x/sync/semaphore"
)

// Store holds both collections. The zero value is not usable; use NewStore.
type Store struct {
	// writer admits one unit of work at a time.
	writer *semaphore.Weighted

	// mu guards the collections for the duration of a single operation.
	mu       sync.RWMutex
	dishes   map[string]dish.Dish
	dishIDs  []string
	orders   map[string]order.Order
	orderIDs []string
}

func NewStore() *Store {
	return &Store{
		writer: semaphore.NewWeighted(1),
		dishes: make(map[string]dish.Dish),
		orders: make(map[string]order.Order),
	}
}

// DishRepository returns a repository whose writes each commit immediately.
func (s *Store) DishRepository() ports.DishRepository {
	return &dishRepository{store: s}
}

// OrderRepository returns a repository whose writes each commit immediately.
func (s *Store) OrderRepository() ports.OrderRepository {
	return &orderRepository{store: s}
}

// autocommit runs a single write in its own unit of work.
func (s *Store) autocommit(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	uow := &UnitOfWork{store: s}
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := fn(uow); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}
	return uow.Commit(ctx)
}

func (s *Store) getDish(id string) (*dish.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.dishes[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("dishId", id)
	}
	return &d, nil
}

func (s *Store) listDishes() []*dish.Dish {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*dish.Dish, 0, len(s.dishIDs))
	for _, id := range s.dishIDs {
		d := s.dishes[id]
		result = append(result, &d)
	}
	return result
}

// putDish inserts or replaces a dish and returns the function that undoes it.
func (s *Store) putDish(d *dish.Dish, insert bool) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, exists := s.dishes[d.ID()]
	switch {
	case insert && exists:
		return nil, errs.NewValueIsInvalidErrorWithCause("dishId", fmt.Errorf("%s already exists", d.ID()))
	case !insert && !exists:
		return nil, errs.NewObjectNotFoundError("dishId", d.ID())
	}

	s.dishes[d.ID()] = *d
	if insert {
		s.dishIDs = append(s.dishIDs, d.ID())
		return func() {
			delete(s.dishes, d.ID())
			s.dishIDs = slices.DeleteFunc(s.dishIDs, func(id string) bool { return id == d.ID() })
		}, nil
	}
	return func() { s.dishes[d.ID()] = previous }, nil
}

func (s *Store) getOrder(id string) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return &o, nil
}

func (s *Store) listOrders() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*order.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		o := s.orders[id]
		result = append(result, &o)
	}
	return result
}

func (s *Store) countOrdersByStatus() map[order.Status]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[order.Status]int)
	for _, o := range s.orders {
		counts[o.Status()]++
	}
	return counts
}

// putOrder inserts or replaces an order and returns the function that undoes it.
func (s *Store) putOrder(o *order.Order, insert bool) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, exists := s.orders[o.ID()]
	switch {
	case insert && exists:
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%s already exists", o.ID()))
	case !insert && !exists:
		return nil, errs.NewObjectNotFoundError("orderId", o.ID())
	}

	s.orders[o.ID()] = *o
	if insert {
		s.orderIDs = append(s.orderIDs, o.ID())
		return func() {
			delete(s.orders, o.ID())
			s.orderIDs = slices.DeleteFunc(s.orderIDs, func(id string) bool { return id == o.ID() })
		}, nil
	}
	return func() { s.orders[o.ID()] = previous }, nil
}

// removeOrder deletes an order and returns the function that puts it back
// at its former position.
func (s *Store) removeOrder(id string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, exists := s.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	position := slices.Index(s.orderIDs, id)
	delete(s.orders, id)
	s.orderIDs = slices.Delete(s.orderIDs, position, position+1)

	return func() {
		s.orders[id] = previous
		s.orderIDs = slices.Insert(s.orderIDs, position, id)
	}, nil
}
