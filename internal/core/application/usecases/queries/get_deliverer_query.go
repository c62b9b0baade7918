package queries

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrGetDelivererQueryIsNotConstructed = errors.New(
	"GetDelivererQuery must be created via NewGetDelivererQuery constructor",
)

// GetDelivererQuery retrieves one deliverer's public profile.
type GetDelivererQuery struct {
	delivererID uint64

	guard guard.ConstructorGuard
}

// NewGetDelivererQuery creates a query for one deliverer.
func NewGetDelivererQuery(delivererID uint64) (GetDelivererQuery, error) {
	if delivererID == 0 {
		return GetDelivererQuery{}, errs.NewValueIsRequiredError("delivererID")
	}

	return GetDelivererQuery{
		delivererID: delivererID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDelivererQuery) Validate() error {
	return q.guard.Validate(ErrGetDelivererQueryIsNotConstructed)
}

// DelivererID returns the requested deliverer's identifier.
func (q GetDelivererQuery) DelivererID() uint64 { return q.delivererID }
