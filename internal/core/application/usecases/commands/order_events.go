package commands

import (
	"context"
	"log/slog"
	"time"

	"campusrun/internal/core/domain/model/order"
	"campusrun/internal/core/ports"
	"campusrun/internal/observability"
)

// publishOrderStatusChanged emits a status-changed event for a committed
// transition. Publishing is best effort: failures are logged, never
// propagated, because the state change has already committed.
func publishOrderStatusChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	aggregate *order.Order,
	fromStatus string,
) {
	observability.OrderTransitionsTotal.WithLabelValues(fromStatus, aggregate.Status().String()).Inc()

	if publisher == nil {
		return
	}

	event := ports.OrderStatusChangedEvent{
		OrderID:     aggregate.ID(),
		OrderNo:     aggregate.OrderNo().String(),
		UserID:      aggregate.UserID(),
		FromStatus:  fromStatus,
		ToStatus:    aggregate.Status().String(),
		OccurredAt:  time.Now().UTC(),
		DelivererID: aggregate.DelivererID(),
	}

	if err := publisher.PublishOrderStatusChanged(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to publish order status changed event",
			"order_id", event.OrderID,
			"from_status", event.FromStatus,
			"to_status", event.ToStatus,
			"error", err)
	}
}
