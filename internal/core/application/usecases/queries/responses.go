// Package queries contains the read operations over the dish and order
// collections. Handlers return read models rather than aggregates.
package queries

import (
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
)

// DishResponse is the read model of a dish.
type DishResponse struct {
	ID          string
	Name        string
	Description string
	Price       int64
	ImageURL    string
}

func NewDishResponse(d *dish.Dish) DishResponse {
	return DishResponse{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

// OrderLineResponse is one dish of an order read model.
type OrderLineResponse struct {
	DishID   string
	Quantity int64
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       string
	Dishes       []OrderLineResponse
}

func NewOrderResponse(o *order.Order) OrderResponse {
	lines := o.Lines()
	dishes := make([]OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		dishes = append(dishes, OrderLineResponse{DishID: line.DishID(), Quantity: line.Quantity()})
	}

	return OrderResponse{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}
