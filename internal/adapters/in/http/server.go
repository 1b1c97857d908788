// Package http is the REST adapter. Server implements ServerInterface on top
// of the command and query handlers; bodies are wrapped under "data" both
// ways and errors are rendered by the handler from NewErrorHandler.
package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server implements ServerInterface.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	listDishesHandler queries.ListDishesQueryHandler
	getDishHandler    queries.GetDishQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// Handlers groups the use cases the server depends on.
type Handlers struct {
	CreateDish  commands.CreateDishCommandHandler
	UpdateDish  commands.UpdateDishCommandHandler
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	ListDishes queries.ListDishesQueryHandler
	GetDish    queries.GetDishQueryHandler
	ListOrders queries.ListOrdersQueryHandler
	GetOrder   queries.GetOrderQueryHandler
}

func NewServer(h Handlers) *Server {
	return &Server{
		createDishHandler:  h.CreateDish,
		updateDishHandler:  h.UpdateDish,
		createOrderHandler: h.CreateOrder,
		updateOrderHandler: h.UpdateOrder,
		deleteOrderHandler: h.DeleteOrder,
		listDishesHandler:  h.ListDishes,
		getDishHandler:     h.GetDish,
		listOrdersHandler:  h.ListOrders,
		getOrderHandler:    h.GetOrder,
	}
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(ctx echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(ctx.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return err
	}

	response := make([]DishData, 0, len(dishes))
	for _, d := range dishes {
		response = append(response, dishData(d))
	}
	return ctx.JSON(http.StatusOK, Envelope{Data: response})
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	var body DishRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(), commands.NewCreateDishCommand(body.Data.toInput()))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Envelope{Data: dishData(queries.NewDishResponse(created))})
}

// GetDish handles GET /dishes/{dishId}.
func (s *Server) GetDish(ctx echo.Context, dishID string) error {
	query, err := queries.NewGetDishQuery(dishID)
	if err != nil {
		return err
	}

	d, err := s.getDishHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Envelope{Data: dishData(d)})
}

// UpdateDish handles PUT /dishes/{dishId}.
func (s *Server) UpdateDish(ctx echo.Context, dishID string) error {
	var body DishRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDishCommand(dishID, body.Data.toInput())
	if err != nil {
		return err
	}

	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Envelope{Data: dishData(queries.NewDishResponse(updated))})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]OrderData, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderData(o))
	}
	return ctx.JSON(http.StatusOK, Envelope{Data: response})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body OrderRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), commands.NewCreateOrderCommand(body.Data.toInput()))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Envelope{Data: orderData(queries.NewOrderResponse(created))})
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Envelope{Data: orderData(o)})
}

// UpdateOrder handles PUT /orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderID string) error {
	var body OrderRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, body.Data.toInput())
	if err != nil {
		return err
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Envelope{Data: orderData(queries.NewOrderResponse(updated))})
}

// DeleteOrder handles DELETE /orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID string) error {
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
