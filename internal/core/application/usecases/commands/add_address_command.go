package commands

import (
	"errors"

	"campusrun/internal/core/domain/model/address"
	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrAddAddressCommandIsNotConstructed = errors.New(
	"AddAddressCommand must be created via NewAddAddressCommand constructor",
)

// AddAddressCommand represents a request to save a new address book entry.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	userID        uint64
	addressType   address.Type
	name          string
	addressDetail string
	contactPerson string
	contactPhone  string
	notes         string
	isDefault     bool

	guard guard.ConstructorGuard
}

// NewAddAddressCommand creates a command to add an address.
func NewAddAddressCommand(
	userID uint64,
	addressType address.Type,
	name, addressDetail, contactPerson, contactPhone, notes string,
	isDefault bool,
) (AddAddressCommand, error) {
	cmd := AddAddressCommand{
		contactPerson: contactPerson,
		contactPhone:  contactPhone,
		notes:         notes,
		isDefault:     isDefault,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAddressType(addressType),
		cmd.setNameAndDetail(name, addressDetail),
	); err != nil {
		return AddAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

// UserID returns the owner's identity.
func (c AddAddressCommand) UserID() uint64 { return c.userID }

// AddressType returns the pickup or delivery type.
func (c AddAddressCommand) AddressType() address.Type { return c.addressType }

// Name returns the short label.
func (c AddAddressCommand) Name() string { return c.name }

// AddressDetail returns the full address text.
func (c AddAddressCommand) AddressDetail() string { return c.addressDetail }

// ContactPerson returns the contact name.
func (c AddAddressCommand) ContactPerson() string { return c.contactPerson }

// ContactPhone returns the contact phone.
func (c AddAddressCommand) ContactPhone() string { return c.contactPhone }

// Notes returns free-form notes.
func (c AddAddressCommand) Notes() string { return c.notes }

// IsDefault reports whether the new entry should become the default for
// its type.
func (c AddAddressCommand) IsDefault() bool { return c.isDefault }

func (c *AddAddressCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}

func (c *AddAddressCommand) setAddressType(addressType address.Type) error {
	if err := addressType.Validate(); err != nil {
		return err
	}

	c.addressType = addressType
	return nil
}

func (c *AddAddressCommand) setNameAndDetail(name, addressDetail string) error {
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
