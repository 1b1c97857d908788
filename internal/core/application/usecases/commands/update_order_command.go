package commands

import (
	"errors"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand asks to overwrite the order addressed by the route.
type UpdateOrderCommand struct {
	orderID string
	input   OrderInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand requires the route's order id; the body is checked by the handler.
func NewUpdateOrderCommand(orderID string, input OrderInput) (UpdateOrderCommand, error) {
	if orderID == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return UpdateOrderCommand{
		orderID: orderID,
		input:   input,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderCommand) Input() OrderInput {
	return c.input
}
