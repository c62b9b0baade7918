package ports

import (
	"context"

	"campusrun/internal/core/domain/model/address"
)

// AddressRepository defines the persistence contract for address book entries.
type AddressRepository interface {
	// Add persists a new address and assigns its store-generated identity
	// via address.AssignID.
	Add(ctx context.Context, entry *address.Address) error

	// Update persists changes to an existing address.
	Update(ctx context.Context, entry *address.Address) error

	// Get retrieves an address by its numeric identifier.
	Get(ctx context.Context, id uint64) (*address.Address, error)

	// GetByOwner retrieves all addresses of a user, optionally filtered by
	// type. Pass address.TypeUnknown to return both types.
	GetByOwner(ctx context.Context, userID uint64, addressType address.Type) ([]*address.Address, error)

	// GetDefault retrieves the user's default address of the given type.
	// Returns an ObjectNotFoundError when no default is set.
	GetDefault(ctx context.Context, userID uint64, addressType address.Type) (*address.Address, error)

	// ClearDefault removes the default mark from all of the user's
	// addresses of the given type. Runs in the current transaction so a
	// new default replaces the old one atomically.
	ClearDefault(ctx context.Context, userID uint64, addressType address.Type) error

	// Delete permanently removes an address.
	Delete(ctx context.Context, id uint64) error
}
