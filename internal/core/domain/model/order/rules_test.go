package order_test

import (
	"testing"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireField(t *testing.T) {
	require.NoError(t, order.RequireField(order.FieldDeliverTo, "A"))
	require.NoError(t, order.RequireField(order.FieldDishes, []order.LineInput{}))

	err := order.RequireField(order.FieldMobileNumber, "")

	assert.Equal(t, "Order must include a mobileNumber", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestParseLines(t *testing.T) {
	t.Run("should convert valid lines in order", func(t *testing.T) {
		lines, err := order.ParseLines([]order.LineInput{
			{DishID: "d1", Quantity: float64(1)},
			{DishID: "d2", Quantity: float64(3)},
		})

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "d1", lines[0].DishID())
		assert.Equal(t, int64(3), lines[1].Quantity())
	})

	t.Run("should reject empty list", func(t *testing.T) {
		_, err := order.ParseLines([]order.LineInput{})

		assert.Equal(t, "Order must include at least one dish", err.Error())
	})

	t.Run("should name first offending index", func(t *testing.T) {
		_, err := order.ParseLines([]order.LineInput{
			{DishID: "d1", Quantity: float64(1)},
			{DishID: "d2", Quantity: float64(0)},
			{DishID: "d3", Quantity: "2"},
		})

		require.Error(t, err)
		assert.Equal(t, "Dish 1 must have a quantity that is an integer greater than 0", err.Error())
		rule, _ := kernel.RuleOf(err)
		assert.Equal(t, kernel.InvalidQuantity, rule)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject missing and fractional quantity", func(t *testing.T) {
		for _, q := range []any{nil, 1.5, "1", float64(-2)} {
			_, err := order.ParseLines([]order.LineInput{{DishID: "x", Quantity: q}})

			require.Error(t, err, "quantity %v", q)
			assert.Equal(t, "Dish 0 must have a quantity that is an integer greater than 0", err.Error())
		}
	})
}

func TestCheckIDMatchesRoute(t *testing.T) {
	require.NoError(t, order.CheckIDMatchesRoute("", "o1"))
	require.NoError(t, order.CheckIDMatchesRoute("o1", "o1"))

	err := order.CheckIDMatchesRoute("o2", "o1")

	assert.Equal(t, "Order id does not match route id. Order: o2, Route: o1.", err.Error())
	require.ErrorIs(t, err, errs.ErrValueMismatch)
}

func TestNotFoundError(t *testing.T) {
	err := order.NotFoundError("o9")

	assert.Equal(t, "Order o9 could not be found", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
