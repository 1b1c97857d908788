package memory

import (
	"context"
	"errors"
	"slices"

	"grubdash/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("memory: no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds the store's writer slot from Begin until Commit or
// Rollback. Every write made through its repositories records an undo step.
// A UnitOfWork must not be shared between goroutines.
type UnitOfWork struct {
	store  *Store
	active bool
	undo   []func()
}

// Begin waits for the writer slot or for ctx to end. Calling Begin on an
// active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := uow.store.writer.Acquire(ctx, 1); err != nil {
		return err
	}
	uow.active = true
	uow.undo = uow.undo[:0]
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.release()
	return nil
}

// Rollback reverts the recorded writes, newest first.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	for _, step := range slices.Backward(uow.undo) {
		step()
	}
	uow.store.mu.Unlock()

	uow.release()
	return nil
}

func (uow *UnitOfWork) release() {
	uow.undo = nil
	uow.active = false
	uow.store.writer.Release(1)
}

// DishRepository writes within the transaction when one is active and
// commits each write on its own otherwise.
func (uow *UnitOfWork) DishRepository() ports.DishRepository {
	if !uow.active {
		return uow.store.DishRepository()
	}
	return &dishRepository{store: uow.store, uow: uow}
}

// OrderRepository writes within the transaction when one is active and
// commits each write on its own otherwise.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	if !uow.active {
		return uow.store.OrderRepository()
	}
	return &orderRepository{store: uow.store, uow: uow}
}

func (uow *UnitOfWork) record(undo func()) {
	uow.undo = append(uow.undo, undo)
}
