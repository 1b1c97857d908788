// Package seed loads the sample menu and orders bundled with the service.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

//go:embed dishes.json
var dishesJSON []byte

//go:embed orders.json
var ordersJSON []byte

type dishRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
}

type lineRecord struct {
	DishID   string `json:"dishId"`
	Quantity int64  `json:"quantity"`
}

type orderRecord struct {
	ID           string       `json:"id"`
	DeliverTo    string       `json:"deliverTo"`
	MobileNumber string       `json:"mobileNumber"`
	Status       string       `json:"status"`
	Dishes       []lineRecord `json:"dishes"`
}

// Dishes decodes the bundled menu.
func Dishes() ([]*dish.Dish, error) {
	var records []dishRecord
	if err := json.Unmarshal(dishesJSON, &records); err != nil {
		return nil, fmt.Errorf("decode seed dishes: %w", err)
	}

	dishes := make([]*dish.Dish, 0, len(records))
	for _, r := range records {
		d, err := dish.NewDish(r.ID, r.Name, r.Description, r.Price, r.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("seed dish %s: %w", r.ID, err)
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

// Orders decodes the bundled orders.
func Orders() ([]*order.Order, error) {
	var records []orderRecord
	if err := json.Unmarshal(ordersJSON, &records); err != nil {
		return nil, fmt.Errorf("decode seed orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(records))
	for _, r := range records {
		lines := make([]order.Line, 0, len(r.Dishes))
		for _, l := range r.Dishes {
			line, err := order.NewLine(l.DishID, l.Quantity)
			if err != nil {
				return nil, fmt.Errorf("seed order %s: %w", r.ID, err)
			}
			lines = append(lines, line)
		}

		o, err := order.RestoreOrder(r.ID, r.DeliverTo, r.MobileNumber, order.Status(r.Status), lines)
		if err != nil {
			return nil, fmt.Errorf("seed order %s: %w", r.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Load writes the bundled dishes and orders in one unit of work. Records
// whose id already exists are skipped, so Load can run on every start.
func Load(ctx context.Context, factory ports.UnitOfWorkFactory) (int, error) {
	dishes, err := Dishes()
	if err != nil {
		return 0, err
	}
	orders, err := Orders()
	if err != nil {
		return 0, err
	}

	uow := factory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loaded := 0
	dishRepo := uow.DishRepository()
	for _, d := range dishes {
		if _, getErr := dishRepo.Get(ctx, d.ID()); getErr == nil {
			continue
		}
		if err = dishRepo.Add(ctx, d); err != nil {
			return 0, err
		}
		loaded++
	}

	orderRepo := uow.OrderRepository()
	for _, o := range orders {
		if _, getErr := orderRepo.Get(ctx, o.ID()); getErr == nil {
			continue
		}
		if err = orderRepo.Add(ctx, o); err != nil {
			return 0, err
		}
		loaded++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return loaded, nil
}
