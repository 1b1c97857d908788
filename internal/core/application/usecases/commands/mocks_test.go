package commands_test

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id string) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	dishes, _ := args.Get(0).([]*dish.Dish)
	return dishes, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[order.Status]int)
	return counts, args.Error(1)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockDishUoW struct {
	MockTx
	repo *MockDishRepository
}

func (m *MockDishUoW) DishRepository() ports.DishRepository {
	m.Called()
	return m.repo
}

type MockOrderUoW struct {
	MockTx
	repo *MockOrderRepository
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	m.Called()
	return m.repo
}

type MockDishUoWFactory struct{ mock.Mock }

func (m *MockDishUoWFactory) Create() commands.DishUoW {
	return m.Called().Get(0).(commands.DishUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockIDGenerator struct{ mock.Mock }

func (m *MockIDGenerator) Next() string {
	return m.Called().String(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, evt order.Event) error {
	return m.Called(ctx, evt).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
