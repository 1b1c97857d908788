package commands

import (
	"errors"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand asks to overwrite the dish addressed by the route.
type UpdateDishCommand struct {
	dishID string
	input  DishInput

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand requires the route's dish id; the body is checked by the handler.
func NewUpdateDishCommand(dishID string, input DishInput) (UpdateDishCommand, error) {
	if dishID == "" {
		return UpdateDishCommand{}, errs.NewValueIsRequiredError("dishId")
	}

	return UpdateDishCommand{
		dishID: dishID,
		input:  input,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

func (c UpdateDishCommand) DishID() string {
	return c.dishID
}

func (c UpdateDishCommand) Input() DishInput {
	return c.input
}
