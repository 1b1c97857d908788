package commands

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks to place a new order.
//
// Example:
//
//	cmd := NewCreateOrderCommand(OrderInput{
//	    DeliverTo:    "Rick Sanchez (C-132)",
//	    MobileNumber: "(202) 555-0119",
//	    Dishes:       []order.LineInput{{DishID: "d351db2b", Quantity: 1.0}},
//	})
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	input OrderInput

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(input OrderInput) CreateOrderCommand {
	return CreateOrderCommand{
		input: input,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Input() OrderInput {
	return c.input
}
