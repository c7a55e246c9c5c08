package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lastmile/internal/adapters/out/postgres/orderrepo"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	sequence   int
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

	// TranslateError turns unique index violations into gorm.ErrDuplicatedKey,
	// which Add maps to ports.ErrOrderAlreadyExists.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createHomeOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateExternalOrderID_ReturnsAlreadyExists() {
	ctx := context.Background()

	first := suite.createHomeOrderWithExternalID("ext-7001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same platform order replayed with a fresh local id must be rejected
	// by the unique index on external_order_id.
	replay := suite.createHomeOrderWithExternalID("ext-7001")
	err := suite.repository.Add(ctx, replay)

	suite.Require().ErrorIs(err, ports.ErrOrderAlreadyExists)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createLockerOrderWithFacility()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.ExternalOrderID(), retrievedOrder.ExternalOrderID())
	suite.Equal("shop.example.com", retrievedOrder.ShopDomain())
	suite.Equal("Kungsgatan 4, Gothenburg", retrievedOrder.StoreAddress())
	suite.Equal(order.Locker, retrievedOrder.Type())
	suite.Equal("Vasagatan 12", retrievedOrder.Recipient().Street())
	suite.Equal("41124", retrievedOrder.Recipient().Postcode())
	suite.Equal(2, retrievedOrder.Parcels())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Nil(retrievedOrder.Courier())

	suite.Require().NotNil(retrievedOrder.Facility())
	suite.Equal(int64(42), retrievedOrder.Facility().ID)
	suite.Equal("Nordstan Lockers", retrievedOrder.Facility().Name)
	suite.Equal("Nordstan 5, Gothenburg", retrievedOrder.Facility().Address)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByExternalID_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createHomeOrderWithExternalID("ext-8001")
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.GetByExternalID(ctx, "ext-8001")
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("ext-8001", retrievedOrder.ExternalOrderID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByExternalID_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.GetByExternalID(ctx, "ext-missing")

	suite.Nil(retrievedOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignCourier_PersistsAssignment() {
	ctx := context.Background()

	testOrder := suite.createHomeOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	courierID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignCourier(courierID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Courier())
	suite.True(courierID.IsEqual(*retrievedOrder.Courier()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createHomeOrder())

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAssignedByCourier_ReturnsOnlyThatCouriersOpenOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	courierID := kernel.NewUUID()
	otherCourierID := kernel.NewUUID()

	assigned1 := suite.createHomeOrder()
	suite.Require().NoError(assigned1.AssignCourier(courierID))
	suite.Require().NoError(suite.repository.Add(ctx, assigned1))

	assigned2 := suite.createHomeOrder()
	suite.Require().NoError(assigned2.AssignCourier(courierID))
	suite.Require().NoError(suite.repository.Add(ctx, assigned2))

	otherAssigned := suite.createHomeOrder()
	suite.Require().NoError(otherAssigned.AssignCourier(otherCourierID))
	suite.Require().NoError(suite.repository.Add(ctx, otherAssigned))

	completed := suite.createHomeOrder()
	suite.Require().NoError(completed.AssignCourier(courierID))
	suite.Require().NoError(completed.Complete())
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	openOrders, err := suite.repository.GetAllAssignedByCourier(ctx, courierID)
	suite.Require().NoError(err)

	suite.Len(openOrders, 2)
	for _, o := range openOrders {
		suite.Equal(order.Assigned, o.Status())
		suite.Require().NotNil(o.Courier())
		suite.True(courierID.IsEqual(*o.Courier()))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingUnassigned_ReturnsHomeBacklogOldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	oldest := suite.createHomeOrder()
	suite.Require().NoError(suite.repository.Add(ctx, oldest))

	newest := suite.createHomeOrder()
	suite.Require().NoError(suite.repository.Add(ctx, newest))

	// Locker orders never need a courier and must stay out of the backlog.
	lockerOrder := suite.createLockerOrderWithFacility()
	suite.Require().NoError(suite.repository.Add(ctx, lockerOrder))

	assigned := suite.createHomeOrder()
	suite.Require().NoError(assigned.AssignCourier(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	backlog, err := suite.repository.GetAllPendingUnassigned(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(backlog, 2)
	suite.Equal(oldest.ID(), backlog[0].ID())
	suite.Equal(newest.ID(), backlog[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingUnassigned_EmptyBacklog_ReturnsEmptySlice() {
	backlog, err := suite.repository.GetAllPendingUnassigned(context.Background())

	suite.Require().NoError(err)
	suite.Empty(backlog)
}

// createHomeOrder creates a pending home-delivery order with a unique external id.
func (suite *OrderRepositoryIntegrationTestSuite) createHomeOrder() *order.Order {
	suite.sequence++
	return suite.createHomeOrderWithExternalID(fmt.Sprintf("ext-%04d", suite.sequence))
}

func (suite *OrderRepositoryIntegrationTestSuite) createHomeOrderWithExternalID(externalOrderID string) *order.Order {
	recipient, err := order.NewRecipient(
		"Eva Larsson", "Vasagatan 12", "41124", "Gothenburg", "+46700000000")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		externalOrderID,
		"shop.example.com",
		"Kungsgatan 4, Gothenburg",
		order.HomeDelivery,
		recipient,
		2,
		"leave at door",
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createLockerOrderWithFacility() *order.Order {
	recipient, err := order.NewRecipient(
		"Eva Larsson", "Vasagatan 12", "41124", "Gothenburg", "+46700000000")
	suite.Require().NoError(err)

	suite.sequence++
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		fmt.Sprintf("ext-locker-%04d", suite.sequence),
		"shop.example.com",
		"Kungsgatan 4, Gothenburg",
		order.Locker,
		recipient,
		2,
		"",
	)
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.AttachFacility(order.FacilitySnapshot{
		ID:      42,
		Name:    "Nordstan Lockers",
		Address: "Nordstan 5, Gothenburg",
		Phone:   "+46311234567",
	}))
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
