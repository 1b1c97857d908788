package commands

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand asks to add a dish to the menu. The input is validated by
// the handler's pipeline, not here, so that failures come back in stage order.
//
// Example:
//
//	cmd := NewCreateDishCommand(DishInput{Name: "Taco", Description: "Spicy", Price: 3.0, ImageURL: "http://x"})
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct {
	input DishInput

	guard guard.ConstructorGuard
}

func NewCreateDishCommand(input DishInput) CreateDishCommand {
	return CreateDishCommand{
		input: input,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) Input() DishInput {
	return c.input
}
