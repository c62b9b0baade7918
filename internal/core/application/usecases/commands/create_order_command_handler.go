package commands

import (
	"context"

	"campusrun/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders always start in pending status with the actual amount derived
// from the total and the coupon discount.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(userID, "Canteen 2", "Dorm 3",
//	    "bubble tea", total, discount, CreateOrderExtras{})
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the new order's
// store-assigned identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(
		cmd.UserID(),
		cmd.StartAddress(), cmd.EndAddress(),
		cmd.ItemDescription(),
		cmd.TotalAmount(), cmd.CouponDiscount(),
	)
	if err != nil {
		return 0, err
	}

	extras := cmd.Extras()
	if extras.OriginLocation != nil && extras.DestinationLocation != nil {
		var distanceKm float64
		var durationMin int
		if extras.EstimatedDistanceKm != nil {
			distanceKm = *extras.EstimatedDistanceKm
		}
		if extras.EstimatedDurationMin != nil {
			durationMin = *extras.EstimatedDurationMin
		}
		if err = newOrder.AttachRoute(
			*extras.OriginLocation, *extras.DestinationLocation,
			distanceKm, durationMin,
		); err != nil {
			return 0, err
		}
	}
	newOrder.SetAddressDetails(extras.OriginDetail, extras.DestinationDetail)
	newOrder.SetOrderImage(extras.OrderImage)
	newOrder.SetPickupInfo(extras.PickupCode, extras.LockerNumber)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
