package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrListDishesQueryIsNotConstructed = errors.New(
	"ListDishesQuery must be created via NewListDishesQuery constructor",
)

// ListDishesQuery retrieves the whole menu.
//
// Example:
//
//	query := NewListDishesQuery()
//	handler := NewListDishesQueryHandler(dishRepo)
//
//	dishes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list dishes: %w", err)
//	}
type ListDishesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDishesQuery() ListDishesQuery {
	return ListDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDishesQuery) Validate() error {
	return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
}
