package queries

import (
	"errors"
	"time"

	"campusrun/internal/core/domain/model/address"
	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrListAddressesQueryIsNotConstructed = errors.New(
	"ListAddressesQuery must be created via NewListAddressesQuery constructor",
)

// ListAddressesQuery retrieves the acting user's address book, optionally
// narrowed to one type. Defaults sort first.
type ListAddressesQuery struct {
	userID      uint64
	addressType string

	guard guard.ConstructorGuard
}

// NewListAddressesQuery creates an address book listing query.
// An empty addressType returns both pickup and delivery entries.
func NewListAddressesQuery(userID uint64, addressType string) (ListAddressesQuery, error) {
	if userID == 0 {
		return ListAddressesQuery{}, errs.NewValueIsRequiredError("userID")
	}
	if addressType != "" {
		if _, err := address.TypeFromString(addressType); err != nil {
			return ListAddressesQuery{}, err
		}
	}

	return ListAddressesQuery{
		userID:      userID,
		addressType: addressType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

// UserID returns the acting user's identity.
func (q ListAddressesQuery) UserID() uint64 { return q.userID }

// AddressType returns the type filter, empty for all.
func (q ListAddressesQuery) AddressType() string { return q.addressType }

// AddressResponse is the read model for one address book entry.
type AddressResponse struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	AddressType   string    `json:"address_type"`
	Name          string    `json:"name"`
	AddressDetail string    `json:"address_detail"`
	ContactPerson string    `json:"contact_person,omitempty"`
	ContactPhone  string    `json:"contact_phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
