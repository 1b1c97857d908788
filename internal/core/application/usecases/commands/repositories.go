// Package commands contains the operations that modify the dish and order
// collections. Every handler follows the same shape: check the command was
// constructed, run its validation pipeline, and only then write inside a unit
// of work.
package commands

import (
	"context"

	"grubdash/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DishRepoFactory provides the dish repository within a transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DishUoW manages transactions for dish operations.
	DishUoW interface {
		TxManager
		DishRepoFactory
	}

	// DishUoWFactory creates dish units of work.
	DishUoWFactory interface {
		Create() DishUoW
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order units of work.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
