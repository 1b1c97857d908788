package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery summarizes the order book for operational reports.
//
// Example:
//
//	counts, err := handler.Handle(ctx, NewCountOrdersByStatusQuery())
//	for _, c := range counts {
//	    logger.Info("orders", "status", c.Status, "count", c.Count)
//	}
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

// StatusCountResponse is the number of orders in one status.
type StatusCountResponse struct {
	Status string
	Count  int
}
