package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Between Begin and
// Commit or Rollback, no other unit of work can write the same store, so a
// pipeline's existence checks and its final write see a consistent state.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit makes the changes permanent.
	// Returns error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the changes.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	// DishRepository returns a dish repository bound to the transaction.
	DishRepository() DishRepository

	// OrderRepository returns an order repository bound to the transaction.
	OrderRepository() OrderRepository
}
