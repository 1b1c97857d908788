// Package ports defines the contracts between the grubdash core and its
// adapters: the resource store, the ID generator and the event publisher.
package ports

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// DishRepository is the dish collection of the resource store.
type DishRepository interface {
	// Add appends a new dish. Its id must not already exist.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update replaces the stored fields of an existing dish.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get returns the dish with the given id, or an error wrapping
	// errs.ErrObjectNotFound.
	Get(ctx context.Context, id string) (*dish.Dish, error)

	// List returns every dish in insertion order.
	List(ctx context.Context) ([]*dish.Dish, error)
}
