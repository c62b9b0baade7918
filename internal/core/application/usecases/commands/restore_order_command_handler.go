package commands

import (
	"context"
	"log/slog"

	"campusrun/internal/core/ports"
)

// RestoreOrderCommandHandler handles restoring a cancelled order to pending.
// Restoring clears the cancellation timestamp so a restored order is
// indistinguishable from a freshly placed one, except for its created time.
type RestoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewRestoreOrderCommandHandler creates a handler for order restoration.
func NewRestoreOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the restore command under a row lock, checking ownership
// before the status guard.
func (h *RestoreOrderCommandHandler) Handle(ctx context.Context, cmd RestoreOrderCommand) error {
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
	if err = aggregate.Restore(); err != nil {
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
