package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// OrderRepository is the order collection of the resource store.
type OrderRepository interface {
	// Add appends a new order. Its id must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored state of an existing order, lines included.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given id, or an error wrapping
	// errs.ErrObjectNotFound.
	Get(ctx context.Context, id string) (*order.Order, error)

	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// Remove deletes the order with the given id, or fails with an error
	// wrapping errs.ErrObjectNotFound.
	Remove(ctx context.Context, id string) error

	// CountByStatus returns the number of stored orders per status.
	// Statuses without orders are omitted.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}
