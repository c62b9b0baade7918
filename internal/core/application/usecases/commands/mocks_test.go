package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campusrun/internal/core/application/usecases/commands"
	"campusrun/internal/core/domain/model/address"
	"campusrun/internal/core/domain/model/deliverer"
	"campusrun/internal/core/domain/model/kernel"
	"campusrun/internal/core/domain/model/order"
	"campusrun/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDelivererRepository struct{ mock.Mock }

func (m *MockDelivererRepository) Add(ctx context.Context, d *deliverer.Deliverer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelivererRepository) Update(ctx context.Context, d *deliverer.Deliverer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelivererRepository) Get(ctx context.Context, id uint64) (*deliverer.Deliverer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Deliverer), args.Error(1)
}

func (m *MockDelivererRepository) GetAll(ctx context.Context) ([]*deliverer.Deliverer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliverer.Deliverer), args.Error(1)
}

func (m *MockDelivererRepository) RecalculateRating(ctx context.Context, delivererID uint64) error {
	args := m.Called(ctx, delivererID)
	return args.Error(0)
}

func (m *MockDelivererRepository) RatedDelivererIDs(ctx context.Context) ([]uint64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Get(ctx context.Context, id uint64) (*address.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressRepository) GetByOwner(
	ctx context.Context, userID uint64, addressType address.Type,
) ([]*address.Address, error) {
	args := m.Called(ctx, userID, addressType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*address.Address), args.Error(1)
}

func (m *MockAddressRepository) GetDefault(
	ctx context.Context, userID uint64, addressType address.Type,
) (*address.Address, error) {
	args := m.Called(ctx, userID, addressType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressRepository) ClearDefault(
	ctx context.Context, userID uint64, addressType address.Type,
) error {
	args := m.Called(ctx, userID, addressType)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) DelivererRepository() ports.DelivererRepository {
	args := m.Called()
	return args.Get(0).(ports.DelivererRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDelivererUoW struct{ mock.Mock }

func (m *MockDelivererUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDelivererUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDelivererUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDelivererUoW) DelivererRepository() ports.DelivererRepository {
	args := m.Called()
	return args.Get(0).(ports.DelivererRepository)
}

type MockDelivererUoWFactory struct{ mock.Mock }

func (m *MockDelivererUoWFactory) Create() commands.DelivererUoW {
	args := m.Called()
	return args.Get(0).(commands.DelivererUoW)
}

type MockAddressUoW struct{ mock.Mock }

func (m *MockAddressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderStatusChanged(
	ctx context.Context, event ports.OrderStatusChangedEvent,
) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOrderEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func mustMoney(t *testing.T, v float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(v)
	require.NoError(t, err)
	return m
}

func pendingOrder(t *testing.T, id, userID uint64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(userID, "Canteen 2", "Dorm 3", "bubble tea",
		mustMoney(t, 25), mustMoney(t, 5))
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	return o
}

func completedOrderWithDeliverer(t *testing.T, id, userID, delivererID uint64) *order.Order {
	t.Helper()
	completedAt := time.Now().UTC()
	o, err := order.RehydrateOrder(order.RehydrateOrderParams{
		ID:             id,
		OrderNo:        kernel.NewOrderNumber(),
		UserID:         userID,
		DelivererID:    &delivererID,
		StartAddress:   "Canteen 2",
		EndAddress:     "Dorm 3",
		TotalAmount:    mustMoney(t, 25),
		CouponDiscount: mustMoney(t, 5),
		ActualAmount:   mustMoney(t, 20),
		Status:         order.Completed,
		CreatedAt:      completedAt.Add(-time.Hour),
		CompletedAt:    &completedAt,
	})
	require.NoError(t, err)
	return o
}
