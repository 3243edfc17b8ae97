package courierrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
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

// nopTracker swallows tracking calls for tests that don't assert on them.
type nopTracker struct{}

func (nopTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

// CourierRepositoryIntegrationTestSuite provides integration tests for
// CourierRepository using PostgreSQL containers.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, couriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) newCourier() *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), "Asha", "asha@example.com", "9876543210")
	suite.Require().NoError(err)
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) addCourier() *courier.Courier {
	c := suite.newCourier()
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	c := suite.addCourier()

	loaded, err := suite.repository.Get(ctx, c.ID())

	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(c.ID()))
	suite.Equal(c.Name(), loaded.Name())
	suite.Equal(c.Email(), loaded.Email())
	suite.Equal(c.Phone(), loaded.Phone())
	suite.True(loaded.IsAvailable())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_UnknownCourier_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestReserveFirstAvailable_FlipsAvailability() {
	ctx := context.Background()
	c := suite.addCourier()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	reserved, err := suite.repository.ReserveFirstAvailable(ctx)

	suite.Require().NoError(err)
	suite.True(reserved.ID().IsEqual(c.ID()))
	suite.False(reserved.IsAvailable())

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsAvailable())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestReserveFirstAvailable_EmptyPool() {
	_, err := suite.repository.ReserveFirstAvailable(context.Background())

	suite.Require().ErrorIs(err, ports.ErrNoCourierAvailable)
}

// TestReserveFirstAvailable_Concurrent drives more reservations than the
// pool holds from parallel goroutines. Every courier must be won by exactly
// one reservation and the surplus calls must see an empty pool.
func (suite *CourierRepositoryIntegrationTestSuite) TestReserveFirstAvailable_Concurrent() {
	ctx := context.Background()
	const poolSize = 5
	const contenders = 20

	repository := courierrepo.NewGormCourierRepository(suite.db, nopTracker{})
	for range poolSize {
		c, err := courier.NewCourier(kernel.NewUUID(), "Asha", "asha@example.com", "9876543210")
		suite.Require().NoError(err)
		suite.Require().NoError(repository.Add(ctx, c))
	}

	var wg sync.WaitGroup
	results := make(chan *courier.Courier, contenders)
	misses := make(chan error, contenders)

	for range contenders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reserved, err := repository.ReserveFirstAvailable(ctx)
			if err != nil {
				misses <- err
				return
			}
			results <- reserved
		}()
	}
	wg.Wait()
	close(results)
	close(misses)

	won := make(map[string]bool)
	for c := range results {
		suite.False(won[c.ID().String()], "courier reserved twice: %s", c.ID())
		won[c.ID().String()] = true
	}
	suite.Len(won, poolSize)

	missCount := 0
	for err := range misses {
		suite.Require().ErrorIs(err, ports.ErrNoCourierAvailable)
		missCount++
	}
	suite.Equal(contenders-poolSize, missCount)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestRelease_ReturnsCourierToPool() {
	ctx := context.Background()
	c := suite.addCourier()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	_, err := suite.repository.ReserveFirstAvailable(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Release(ctx, c.ID()))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsAvailable())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestRelease_IsIdempotent() {
	ctx := context.Background()
	c := suite.addCourier()

	suite.Require().NoError(suite.repository.Release(ctx, c.ID()))
	suite.Require().NoError(suite.repository.Release(ctx, c.ID()))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsAvailable())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestRelease_UnknownCourier_ReturnsNotFound() {
	err := suite.repository.Release(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllStranded() {
	ctx := context.Background()
	orderRepo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	repository := courierrepo.NewGormCourierRepository(suite.db, nopTracker{})

	// Busy courier with an open order: not stranded
	busy, err := courier.NewCourier(kernel.NewUUID(), "Busy", "busy@example.com", "9876543210")
	suite.Require().NoError(err)
	suite.Require().NoError(busy.Reserve())
	suite.Require().NoError(repository.Add(ctx, busy))
	suite.Require().NoError(orderRepo.Add(ctx, suite.pendingOrderFor(busy.ID())))

	// Busy courier without any order: stranded
	stranded, err := courier.RestoreCourier(kernel.NewUUID(), "Lost", "lost@example.com", "9876543211", false)
	suite.Require().NoError(err)
	suite.Require().NoError(repository.Add(ctx, stranded))

	// Available courier: not stranded
	free, err := courier.NewCourier(kernel.NewUUID(), "Free", "free@example.com", "9876543212")
	suite.Require().NoError(err)
	suite.Require().NoError(repository.Add(ctx, free))

	result, err := repository.GetAllStranded(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID().IsEqual(stranded.ID()))
}

func (suite *CourierRepositoryIntegrationTestSuite) pendingOrderFor(courierID kernel.UUID) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), 1, 5.00)
	suite.Require().NoError(err)
	info, err := order.NewDeliveryInfo("Ravi", "9876543210", "14 MG Road")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("pi_123", order.PaymentStatusConfirmed)
	suite.Require().NoError(err)
	code, err := order.VerificationCodeFromString("123456")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, info, payment, nil, code, courierID,
	)
	suite.Require().NoError(err)
	return o
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
