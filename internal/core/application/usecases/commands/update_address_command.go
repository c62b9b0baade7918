package commands

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a request to edit an existing address
// book entry. The entry's type is not editable.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID     uint64
	userID        uint64
	name          string
	addressDetail string
	contactPerson string
	contactPhone  string
	notes         string
	isDefault     bool

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to update an address.
func NewUpdateAddressCommand(
	addressID, userID uint64,
	name, addressDetail, contactPerson, contactPhone, notes string,
	isDefault bool,
) (UpdateAddressCommand, error) {
	cmd := UpdateAddressCommand{
		contactPerson: contactPerson,
		contactPhone:  contactPhone,
		notes:         notes,
		isDefault:     isDefault,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setUserID(userID),
		cmd.setNameAndDetail(name, addressDetail),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// AddressID returns the identifier of the entry to update.
func (c UpdateAddressCommand) AddressID() uint64 { return c.addressID }

// UserID returns the identity of the acting user.
func (c UpdateAddressCommand) UserID() uint64 { return c.userID }

// Name returns the new short label.
func (c UpdateAddressCommand) Name() string { return c.name }

// AddressDetail returns the new full address text.
func (c UpdateAddressCommand) AddressDetail() string { return c.addressDetail }

// ContactPerson returns the new contact name.
func (c UpdateAddressCommand) ContactPerson() string { return c.contactPerson }

// ContactPhone returns the new contact phone.
func (c UpdateAddressCommand) ContactPhone() string { return c.contactPhone }

// Notes returns the new free-form notes.
func (c UpdateAddressCommand) Notes() string { return c.notes }

// IsDefault reports whether the entry should be the default for its type.
func (c UpdateAddressCommand) IsDefault() bool { return c.isDefault }

func (c *UpdateAddressCommand) setAddressID(addressID uint64) error {
	if addressID == 0 {
		return errs.NewValueIsRequiredError("addressID")
	}

	c.addressID = addressID
	return nil
}

func (c *UpdateAddressCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}

func (c *UpdateAddressCommand) setNameAndDetail(name, addressDetail string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if addressDetail == "" {
		return errs.NewValueIsRequiredError("addressDetail")
	}

	c.name = name
	c.addressDetail = addressDetail
	return nil
}
