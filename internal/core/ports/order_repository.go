package ports

import (
	"context"

	"campusrun/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and removing order entities.
type OrderRepository interface {
	// Add persists a new order aggregate to storage and assigns its
	// store-generated identity via order.AssignID.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its numeric identifier.
	// Returns the complete order with its current status and review.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and takes a row lock on it
	// for the lifetime of the current transaction. Concurrent transitions on
	// the same order serialize on this lock, so every status change reads
	// the latest committed state before applying its guard.
	GetForUpdate(ctx context.Context, id uint64) (*order.Order, error)

	// Delete permanently removes an order aggregate from storage.
	// Callers must enforce the deletable-status rule before invoking it.
	Delete(ctx context.Context, id uint64) error
}
