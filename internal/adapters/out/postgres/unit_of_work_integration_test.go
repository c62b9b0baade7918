package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campusrun/internal/adapters/out/postgres"
	"campusrun/internal/adapters/out/postgres/addressrepo"
	"campusrun/internal/adapters/out/postgres/delivererrepo"
	"campusrun/internal/adapters/out/postgres/orderrepo"
	"campusrun/internal/core/domain/model/address"
	"campusrun/internal/core/domain/model/deliverer"
	"campusrun/internal/core/domain/model/kernel"
	"campusrun/internal/core/domain/model/order"
)

// UnitOfWorkIntegrationTestSuite verifies transaction behavior across the
// order, deliverer, and address repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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
		&delivererrepo.DelivererDTO{},
		&addressrepo.AddressDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, deliverers, addresses").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) money(v float64) kernel.Money {
	m, err := kernel.NewMoneyFromFloat(v)
	suite.Require().NoError(err)
	return m
}

func (suite *UnitOfWorkIntegrationTestSuite) seedDeliverer() *deliverer.Deliverer {
	ctx := context.Background()
	d, err := deliverer.NewDeliverer(gofakeit.Name(), "", gofakeit.Phone())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DelivererRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCompletedOrder(userID, delivererID uint64) *order.Order {
	ctx := context.Background()
	o, err := order.NewOrder(userID, "Canteen 2", "Dorm 3", "bubble tea",
		suite.money(25), suite.money(5))
	suite.Require().NoError(err)
	suite.Require().NoError(o.Accept(delivererID))
	suite.Require().NoError(o.StartDelivering())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	// completed state comes from the store to mirror the real flow
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET status = 'completed', completed_at = NOW() WHERE id = ?", o.ID()).Error)

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	return loaded
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()

	o, err := order.NewOrder(10, "Canteen 2", "Dorm 3", "snacks",
		suite.money(12), suite.money(0))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReviewAndRating_CommitTogether() {
	ctx := context.Background()
	d := suite.seedDeliverer()
	o := suite.seedCompletedOrder(10, d.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.SetReview(4, "good"))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))
	suite.Require().NoError(uow.DelivererRepository().RecalculateRating(ctx, d.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	reloaded, err := suite.factory.Create().DelivererRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.InDelta(4.0, reloaded.Rating(), 1e-9)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRating_MeanOverMultipleOrders() {
	ctx := context.Background()
	d := suite.seedDeliverer()

	first := suite.seedCompletedOrder(10, d.ID())
	second := suite.seedCompletedOrder(10, d.ID())

	for i, pair := range []struct {
		o      *order.Order
		rating int
	}{{first, 5}, {second, 4}} {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		locked, err := uow.OrderRepository().GetForUpdate(ctx, pair.o.ID())
		suite.Require().NoError(err, "order %d", i)
		suite.Require().NoError(locked.SetReview(pair.rating, ""))
		suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))
		suite.Require().NoError(uow.DelivererRepository().RecalculateRating(ctx, d.ID()))
		suite.Require().NoError(uow.Commit(ctx))
	}

	reloaded, err := suite.factory.Create().DelivererRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.InDelta(4.5, reloaded.Rating(), 1e-9)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDefaultAddress_SwapIsAtomic() {
	ctx := context.Background()

	first, err := address.NewAddress(10, address.TypeDelivery,
		"Dorm 3", "Building 3, Room 412", "Zhang Wei", "13800000003", "", true)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AddressRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	second, err := address.NewAddress(10, address.TypeDelivery,
		"Dorm 5", "Building 5, Room 101", "Zhang Wei", "13800000003", "", true)
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.AddressRepository()
	suite.Require().NoError(repo.ClearDefault(ctx, 10, address.TypeDelivery))
	suite.Require().NoError(repo.Add(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	defaultEntry, err := suite.factory.Create().AddressRepository().
		GetDefault(ctx, 10, address.TypeDelivery)
	suite.Require().NoError(err)
	suite.Equal(second.ID(), defaultEntry.ID())

	var defaults int64
	suite.Require().NoError(suite.db.Model(&addressrepo.AddressDTO{}).
		Where("user_id = ? AND address_type = 'delivery' AND is_default", 10).
		Count(&defaults).Error)
	suite.Equal(int64(1), defaults, "exactly one default per type")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
