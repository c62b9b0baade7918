package queries

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrGetDefaultAddressesQueryIsNotConstructed = errors.New(
	"GetDefaultAddressesQuery must be created via NewGetDefaultAddressesQuery constructor",
)

// GetDefaultAddressesQuery retrieves the user's default pickup and
// delivery addresses in one shot, for prefilling the order form.
type GetDefaultAddressesQuery struct {
	userID uint64

	guard guard.ConstructorGuard
}

// NewGetDefaultAddressesQuery creates a default-addresses query.
func NewGetDefaultAddressesQuery(userID uint64) (GetDefaultAddressesQuery, error) {
	if userID == 0 {
		return GetDefaultAddressesQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetDefaultAddressesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDefaultAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetDefaultAddressesQueryIsNotConstructed)
}

// UserID returns the acting user's identity.
func (q GetDefaultAddressesQuery) UserID() uint64 { return q.userID }

// GetDefaultAddressesQueryResponse carries at most one default per type.
// A nil field means the user has not set a default of that type.
type GetDefaultAddressesQueryResponse struct {
	Pickup   *AddressResponse `json:"pickup,omitempty"`
	Delivery *AddressResponse `json:"delivery,omitempty"`
}
