package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/idgen"
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/adapters/out/postgres"
	"grubdash/internal/adapters/out/rabbitmq"
	"grubdash/internal/adapters/out/seed"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"
)

// CompositionRoot owns the adapters selected by Config and builds the
// handlers on top of them.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	dishes     ports.DishRepository
	orders     ports.OrderRepository
	ids        ports.IDGenerator
	publisher  ports.OrderEventPublisher
	closers    []func() error
}

// NewCompositionRoot opens the configured store and event publisher.
// Call Close when done.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:    config,
		logger:    logger,
		ids:       idgen.NewUUIDGenerator(),
		publisher: rabbitmq.NopPublisher{},
	}

	if err := root.openStore(); err != nil {
		return nil, err
	}

	if config.RabbitMQURL != "" {
		publisher, err := rabbitmq.Dial(config.RabbitMQURL, config.RabbitMQExchange)
		if err != nil {
			_ = root.Close()
			return nil, err
		}
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	}
	return root, nil
}

func (c *CompositionRoot) openStore() error {
	switch c.config.StoreDriver {
	case StorePostgres:
		db, err := postgres.Open(postgres.DSN(c.config.DBHost, c.config.DBPort, c.config.DBUser,
			c.config.DBPassword, c.config.DBName, c.config.DBSslMode))
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get sql.DB: %w", err)
		}
		c.closers = append(c.closers, sqlDB.Close)

		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		// A unit of work that never begins reads through the plain connection.
		reader := c.uowFactory.Create()
		c.dishes = reader.DishRepository()
		c.orders = reader.OrderRepository()
	default:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.dishes = store.DishRepository()
		c.orders = store.OrderRepository()
	}
	return nil
}

// Seed loads the bundled sample data when SEED_DATA is set.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	if !c.config.SeedData {
		return nil
	}

	loaded, err := seed.Load(ctx, c.uowFactory)
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	c.logger.InfoContext(ctx, "Sample data loaded", "records", loaded)
	return nil
}

// Close releases the connections opened by NewCompositionRoot, newest first.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

func (c *CompositionRoot) dishUoWFactory() commands.DishUoWFactory {
	return FuncDishUoWFactory(func() commands.DishUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishUoWFactory(), c.ids)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.ids, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.dishes)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.dishes)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.orders)
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateDish:  c.CreateCreateDishCommandHandler(),
		UpdateDish:  c.CreateUpdateDishCommandHandler(),
		CreateOrder: c.CreateCreateOrderCommandHandler(),
		UpdateOrder: c.CreateUpdateOrderCommandHandler(),
		DeleteOrder: c.CreateDeleteOrderCommandHandler(),
		ListDishes:  c.CreateListDishesQueryHandler(),
		GetDish:     c.CreateGetDishQueryHandler(),
		ListOrders:  c.CreateListOrdersQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountOrdersByStatusQueryHandler(), c.config.ReportSchedule, c.logger)
}

type FuncDishUoWFactory func() commands.DishUoW

func (f FuncDishUoWFactory) Create() commands.DishUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
