package dishrepo_test

import (
	"context"
	"testing"
	"time"

	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

type DishRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *dishrepo.GormDishRepository
	tracker    *MockAggregateTracker
}

func (suite *DishRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&dishrepo.DishDTO{}))
}

func (suite *DishRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dishes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = dishrepo.NewGormDishRepository(suite.db, suite.tracker)
}

func (suite *DishRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DishRepositoryIntegrationTestSuite) newDish(id string, price int64) *dish.Dish {
	d, err := dish.NewDish(id, "Dish "+id, "Description "+id, price, "https://images.example/"+id)
	suite.Require().NoError(err)
	return d
}

func (suite *DishRepositoryIntegrationTestSuite) TestAdd_TracksAggregate() {
	d := suite.newDish("d1", 12)
	suite.tracker.On("TrackAggregate", "d1", d).Once()

	suite.Require().NoError(suite.repository.Add(context.Background(), d))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DishRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Fails() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDish("d1", 12)))

	err := suite.repository.Add(ctx, suite.newDish("d1", 13))

	suite.Require().Error(err)
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 1)
}

func (suite *DishRepositoryIntegrationTestSuite) TestGet_ReturnsStoredFields() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDish("d1", 12)))

	got, err := suite.repository.Get(ctx, "d1")

	suite.Require().NoError(err)
	suite.Equal("d1", got.ID())
	suite.Equal("Dish d1", got.Name())
	suite.Equal("Description d1", got.Description())
	suite.Equal(int64(12), got.Price())
	suite.Equal("https://images.example/d1", got.ImageURL())
}

func (suite *DishRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsObjectNotFound() {
	_, err := suite.repository.Get(context.Background(), "missing")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DishRepositoryIntegrationTestSuite) TestUpdate_OverwritesMutableFields() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	d := suite.newDish("d1", 12)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.Revise("Renamed", "New description", 20, "https://images.example/new"))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	got, err := suite.repository.Get(ctx, "d1")
	suite.Require().NoError(err)
	suite.Equal("Renamed", got.Name())
	suite.Equal(int64(20), got.Price())
	suite.Equal("https://images.example/new", got.ImageURL())
}

func (suite *DishRepositoryIntegrationTestSuite) TestUpdate_Unknown_ReturnsObjectNotFound() {
	err := suite.repository.Update(context.Background(), suite.newDish("missing", 1))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DishRepositoryIntegrationTestSuite) TestList_ReturnsInsertionOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, id := range []string{"zz", "aa", "mm"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newDish(id, 1)))
	}

	dishes, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(dishes, 3)
	suite.Equal("zz", dishes[0].ID())
	suite.Equal("aa", dishes[1].ID())
	suite.Equal("mm", dishes[2].ID())
}

func (suite *DishRepositoryIntegrationTestSuite) TestList_Empty() {
	dishes, err := suite.repository.List(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(dishes)
	suite.Empty(dishes)
}

func TestDishRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DishRepositoryIntegrationTestSuite))
}
