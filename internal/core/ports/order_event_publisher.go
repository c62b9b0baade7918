package ports

import (
	"context"
	"time"
)

// OrderStatusChangedEvent is emitted after an order transition commits.
// Consumers get the transition edge, not just the resulting state.
type OrderStatusChangedEvent struct {
	OrderID     uint64    `json:"order_id"`
	OrderNo     string    `json:"order_no"`
	UserID      uint64    `json:"user_id"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	OccurredAt  time.Time `json:"occurred_at"`
	DelivererID *uint64   `json:"deliverer_id,omitempty"`
}

// OrderEventPublisher publishes order lifecycle events to the message bus.
// Publishing is best effort: a failed publish must not roll back the
// transition that produced it.
type OrderEventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error

	// Close releases the underlying connection.
	Close() error
}
