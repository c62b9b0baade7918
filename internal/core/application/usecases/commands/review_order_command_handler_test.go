package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campusrun/internal/core/application/usecases/commands"
	"campusrun/internal/core/domain/model/kernel"
	"campusrun/internal/core/domain/model/order"
	"campusrun/internal/pkg/errs"
)

func completedOrderWithoutDeliverer(t *testing.T, id, userID uint64) *order.Order {
	t.Helper()
	completedAt := time.Now().UTC()
	o, err := order.RehydrateOrder(order.RehydrateOrderParams{
		ID:             id,
		OrderNo:        kernel.NewOrderNumber(),
		UserID:         userID,
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

func TestReviewOrderCommandHandler_Handle_RecalculatesRating(t *testing.T) {
	ctx := t.Context()
	aggregate := completedOrderWithDeliverer(t, 101, 10, 7)
	cmd, err := commands.NewReviewOrderCommand(101, 10, 5, "fast and friendly")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delivererRepo := new(MockDelivererRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, uint64(101)).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("DelivererRepository").Return(delivererRepo).Once(),
		delivererRepo.On("RecalculateRating", mock.Anything, uint64(7)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, aggregate.Review())
	require.Equal(t, 5, aggregate.Review().Rating())
	orderRepo.AssertExpectations(t)
	delivererRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewOrderCommandHandler_Handle_NoDelivererSkipsRecalc(t *testing.T) {
	ctx := t.Context()
	aggregate := completedOrderWithoutDeliverer(t, 101, 10)
	cmd, err := commands.NewReviewOrderCommand(101, 10, 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, uint64(101)).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "DelivererRepository")
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewOrderCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()
	aggregate := completedOrderWithoutDeliverer(t, 101, 10)
	require.NoError(t, aggregate.SetReview(5, "first"))

	cmd, err := commands.NewReviewOrderCommand(101, 10, 3, "second")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, uint64(101)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStatusConflict)
	require.Equal(t, 5, aggregate.Review().Rating(), "first review wins")
}

func TestReviewOrderCommandHandler_Handle_NotCompleted(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder(t, 101, 10)
	cmd, err := commands.NewReviewOrderCommand(101, 10, 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, uint64(101)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStatusConflict)
}

func TestNewReviewOrderCommand_RatingOutOfRange(t *testing.T) {
	_, err := commands.NewReviewOrderCommand(101, 10, 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewReviewOrderCommand(101, 10, 6, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
