package commands

import (
	"context"
	"log/slog"

	"campusrun/internal/core/ports"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Only the order's owner may cancel, and only while the order is pending.
// The transition runs under a row lock so concurrent status changes on the
// same order serialize instead of double applying.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation command. Ownership is checked before the
// status guard so a non-owner always sees a forbidden error, not a status
// conflict. Publishes a status-changed event after commit, best effort.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureOwnedBy(cmd.UserID()); err != nil {
		return err
	}

	fromStatus := aggregate.Status().String()
	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderStatusChanged(ctx, h.publisher, h.logger, aggregate, fromStatus)
	return nil
}
