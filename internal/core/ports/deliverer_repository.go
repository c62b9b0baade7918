// Package ports defines repository interfaces for the campus delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"campusrun/internal/core/domain/model/deliverer"
)

// DelivererRepository defines the persistence contract for deliverer aggregates.
type DelivererRepository interface {
	// Add persists a new deliverer aggregate to storage and assigns its
	// store-generated identity via deliverer.AssignID.
	Add(ctx context.Context, aggregate *deliverer.Deliverer) error

	// Update persists changes to an existing deliverer aggregate.
	Update(ctx context.Context, aggregate *deliverer.Deliverer) error

	// Get retrieves a deliverer aggregate by its numeric identifier.
	Get(ctx context.Context, id uint64) (*deliverer.Deliverer, error)

	// GetAll retrieves all registered deliverers ordered by rating, best first.
	GetAll(ctx context.Context) ([]*deliverer.Deliverer, error)

	// RecalculateRating recomputes the deliverer's aggregate rating as the
	// mean of user review scores over that deliverer's completed rated
	// orders. The recomputation runs as a single statement inside the
	// current transaction, so a review and the rating it contributes to
	// become visible together.
	RecalculateRating(ctx context.Context, delivererID uint64) error

	// RatedDelivererIDs returns the ids of all deliverers that have at
	// least one completed rated order. Used by the reconciliation job to
	// sweep ratings back into line with the review data.
	RatedDelivererIDs(ctx context.Context) ([]uint64, error)
}
