package commands

import (
	"context"
	"errors"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"
)

func dishExists(repo ports.DishRepository, id string, found **dish.Dish) pipeline.Stage {
	return func(ctx context.Context) error {
		d, err := repo.Get(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return dish.NotFoundError(id)
		}
		if err != nil {
			return err
		}
		*found = d
		return nil
	}
}

// dishFieldStages checks presence of the four dish fields and then the price,
// storing the parsed price in price.
func dishFieldStages(in DishInput, price *int64) []pipeline.Stage {
	return []pipeline.Stage{
		pipeline.Check(func() error { return dish.RequireField(dish.FieldName, in.Name) }),
		pipeline.Check(func() error { return dish.RequireField(dish.FieldDescription, in.Description) }),
		pipeline.Check(func() error { return dish.RequireField(dish.FieldPrice, in.Price) }),
		pipeline.Check(func() error { return dish.RequireField(dish.FieldImageURL, in.ImageURL) }),
		pipeline.Check(func() error {
			p, err := dish.ParsePrice(in.Price)
			*price = p
			return err
		}),
	}
}

func orderExists(repo ports.OrderRepository, id string, found **order.Order) pipeline.Stage {
	return func(ctx context.Context) error {
		o, err := repo.Get(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return order.NotFoundError(id)
		}
		if err != nil {
			return err
		}
		*found = o
		return nil
	}
}

// orderFieldStages checks presence of the three order fields and then every
// line quantity, storing the parsed lines in lines.
func orderFieldStages(in OrderInput, lines *[]order.Line) []pipeline.Stage {
	return []pipeline.Stage{
		pipeline.Check(func() error { return order.RequireField(order.FieldDeliverTo, in.DeliverTo) }),
		pipeline.Check(func() error { return order.RequireField(order.FieldMobileNumber, in.MobileNumber) }),
		pipeline.Check(func() error { return order.RequireField(order.FieldDishes, in.Dishes) }),
		pipeline.Check(func() error {
			parsed, err := order.ParseLines(in.Dishes)
			*lines = parsed
			return err
		}),
	}
}

// statusIsValid rejects changes to a delivered order, then checks the status
// the body asks for.
func statusIsValid(current **order.Order, requested string) pipeline.Stage {
	return pipeline.Check(func() error {
		if err := (*current).Status().ValidateChange(); err != nil {
			return err
		}
		return order.CheckRequestedStatus(requested)
	})
}
