package commands

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand represents a request to remove an address book entry.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	addressID uint64
	userID    uint64

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand creates a command to delete an address.
func NewDeleteAddressCommand(addressID, userID uint64) (DeleteAddressCommand, error) {
	cmd := DeleteAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setUserID(userID),
	); err != nil {
		return DeleteAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

// AddressID returns the identifier of the entry to delete.
func (c DeleteAddressCommand) AddressID() uint64 {
	return c.addressID
}

// UserID returns the identity of the acting user.
func (c DeleteAddressCommand) UserID() uint64 {
	return c.userID
}

func (c *DeleteAddressCommand) setAddressID(addressID uint64) error {
	if addressID == 0 {
		return errs.NewValueIsRequiredError("addressID")
	}

	c.addressID = addressID
	return nil
}

func (c *DeleteAddressCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
