package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(location *kernel.GeoPoint) *order.Order {
	first, err := order.NewItem(kernel.NewUUID(), 2, 5.50)
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), 1, 3.00)
	suite.Require().NoError(err)
	info, err := order.NewDeliveryInfo("Ravi Kumar", "9876543210", "14 MG Road, Bengaluru")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("pi_3MtwBw", order.PaymentStatusConfirmed)
	suite.Require().NoError(err)
	code, err := order.VerificationCodeFromString("123456")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{first, second}, info, payment, location, code, kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	suite.Require().NoError(err)
	aggregate := suite.newOrder(&location)
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))
	suite.True(loaded.CustomerID().IsEqual(aggregate.CustomerID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.InDelta(aggregate.TotalPrice(), loaded.TotalPrice(), 0)
	suite.Len(loaded.Items(), 2)
	suite.Equal(aggregate.DeliveryInfo(), loaded.DeliveryInfo())
	suite.Equal(aggregate.Payment(), loaded.Payment())
	suite.Require().NotNil(loaded.Location())
	suite.InDelta(12.9716, loaded.Location().Lat(), 1e-9)
	suite.Require().NotNil(loaded.Courier())
	suite.True(loaded.Courier().IsEqual(*aggregate.Courier()))
	suite.Zero(loaded.FailedVerifications())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_WithoutLocation() {
	ctx := context.Background()
	aggregate := suite.newOrder(nil)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.Location())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleState() {
	ctx := context.Background()
	aggregate := suite.newOrder(nil)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Record a failed attempt, then deliver
	_, err := aggregate.VerifyHandoff("000000")
	suite.Require().ErrorIs(err, order.ErrInvalidVerificationCode)
	released, err := aggregate.VerifyHandoff("123456")
	suite.Require().NoError(err)
	suite.True(released)

	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, loaded.Status())
	suite.Equal(1, loaded.FailedVerifications())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder() {
	aggregate := suite.newOrder(nil)

	err := suite.repository.Update(context.Background(), aggregate)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
