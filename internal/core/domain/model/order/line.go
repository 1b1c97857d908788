package order

import (
	"errors"
	"fmt"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

// Line is one dish of an order with the number of portions requested.
type Line struct {
	dishID   string
	quantity int64
}

// NewLine validates that quantity is positive.
func NewLine(dishID string, quantity int64) (Line, error) {
	if quantity <= 0 {
		return Line{}, errs.NewValueIsOutOfRangeError(FieldQuantity, quantity, 1, "unbounded")
	}
	return Line{dishID: dishID, quantity: quantity}, nil
}

func (l Line) DishID() string {
	return l.dishID
}

func (l Line) Quantity() int64 {
	return l.quantity
}

// LineInput is an order line as supplied by a client. Quantity holds the raw
// decoded JSON value so non-numeric input can be reported by index.
type LineInput struct {
	DishID   string
	Quantity any
}

// ParseLines converts client lines, reporting an empty list or the first line
// whose quantity is not an integer greater than zero.
func ParseLines(inputs []LineInput) ([]Line, error) {
	if len(inputs) == 0 {
		return nil, kernel.NewRuleViolation(kernel.MissingField, errs.NewValueIsRequiredError(FieldDishes),
			"Order must include at least one dish")
	}

	lines := make([]Line, 0, len(inputs))
	for i, input := range inputs {
		quantity, err := kernel.PositiveInteger(FieldQuantity, input.Quantity)
		if err != nil {
			return nil, kernel.NewRuleViolation(kernel.InvalidQuantity,
				fmt.Errorf("dishes[%d]: %w", i, err),
				"Dish %d must have a quantity that is an integer greater than 0", i)
		}
		lines = append(lines, Line{dishID: input.DishID, quantity: quantity})
	}
	return lines, nil
}

func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError(FieldDishes)
	}
	var err error
	for i, line := range lines {
		if line.quantity <= 0 {
			err = errors.Join(err, fmt.Errorf("dishes[%d]: %w", i,
				errs.NewValueIsOutOfRangeError(FieldQuantity, line.quantity, 1, "unbounded")))
		}
	}
	return err
}
