package commands

import "grubdash/internal/core/domain/model/order"

// DishInput is the data object of a dish request body. Price keeps the
// decoded JSON value so a non-numeric price reaches the price rule.
type DishInput struct {
	ID          string
	Name        string
	Description string
	Price       any
	ImageURL    string
}

// OrderInput is the data object of an order request body. A nil Dishes
// means the field was absent; an empty non-nil slice means it was [].
type OrderInput struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       string
	Dishes       []order.LineInput
}
