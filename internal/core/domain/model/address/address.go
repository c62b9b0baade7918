package address

import (
	"errors"
	"fmt"
	"time"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RehydrateAddress.
var ErrAddressIsNotConstructed = errors.New(
	"Address must be created via NewAddress or RehydrateAddress")

// Type distinguishes pickup addresses from delivery addresses. A user keeps
// at most one default address per type.
type Type int

const (
	TypeUnknown Type = iota
	TypePickup
	TypeDelivery
)

// TypeFromString parses a persisted address type string.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "pickup":
		return TypePickup, nil
	case "delivery":
		return TypeDelivery, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("addressType",
			fmt.Errorf("%q is not a valid address type", s))
	}
}

func (t Type) String() string {
	switch t {
	case TypePickup:
		return "pickup"
	case TypeDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Validate checks that the Type is TypePickup or TypeDelivery.
func (t Type) Validate() error {
	if t != TypePickup && t != TypeDelivery {
		return errs.NewValueIsInvalidError("addressType")
	}
	return nil
}

// Address is a saved address book entry owned by a single user.
type Address struct {
	id            uint64
	userID        uint64
	addressType   Type
	name          string
	addressDetail string
	contactPerson string
	contactPhone  string
	notes         string
	isDefault     bool
	createdAt     time.Time
	updatedAt     time.Time

	guard guard.ConstructorGuard
}

// NewAddress creates a new address book entry for the given owner.
func NewAddress(
	userID uint64,
	addressType Type,
	name, addressDetail, contactPerson, contactPhone, notes string,
	isDefault bool,
) (*Address, error) {
	if userID == 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}
	if err := addressType.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if addressDetail == "" {
		return nil, errs.NewValueIsRequiredError("addressDetail")
	}

	now := time.Now().UTC()
	return &Address{
		userID:        userID,
		addressType:   addressType,
		name:          name,
		addressDetail: addressDetail,
		contactPerson: contactPerson,
		contactPhone:  contactPhone,
		notes:         notes,
		isDefault:     isDefault,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RehydrateAddress reconstructs an Address from persistence.
func RehydrateAddress(
	id, userID uint64,
	addressType Type,
	name, addressDetail, contactPerson, contactPhone, notes string,
	isDefault bool,
	createdAt, updatedAt time.Time,
) (*Address, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if userID == 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}
	if err := addressType.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if addressDetail == "" {
		return nil, errs.NewValueIsRequiredError("addressDetail")
	}

	return &Address{
		id:            id,
		userID:        userID,
		addressType:   addressType,
		name:          name,
		addressDetail: addressDetail,
		contactPerson: contactPerson,
		contactPhone:  contactPhone,
		notes:         notes,
		isDefault:     isDefault,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was properly constructed.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// AssignID sets the store-assigned identity after the first insert.
func (a *Address) AssignID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if a.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("address already has id %d", a.id))
	}
	a.id = id
	return nil
}

// EnsureOwnedBy checks the address belongs to the given user. Ownership
// failures are distinct from not-found so callers can map them to 403.
func (a *Address) EnsureOwnedBy(userID uint64) error {
	if a.userID != userID {
		return errs.NewNotOwnerError("address", a.id)
	}
	return nil
}

// Update replaces the editable fields. The owner, type, and default flag
// are not editable through this method.
func (a *Address) Update(name, addressDetail, contactPerson, contactPhone, notes string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if addressDetail == "" {
		return errs.NewValueIsRequiredError("addressDetail")
	}

	a.name = name
	a.addressDetail = addressDetail
	a.contactPerson = contactPerson
	a.contactPhone = contactPhone
	a.notes = notes
	a.updatedAt = time.Now().UTC()
	return nil
}

// MakeDefault marks this address as the default for its type. The caller is
// responsible for clearing the previous default of the same owner and type
// in the same transaction.
func (a *Address) MakeDefault() {
	a.isDefault = true
	a.updatedAt = time.Now().UTC()
}

// ClearDefault removes the default mark.
func (a *Address) ClearDefault() {
	a.isDefault = false
	a.updatedAt = time.Now().UTC()
}

// ID returns the numeric identity, zero until first persisted.
func (a *Address) ID() uint64 { return a.id }

// UserID returns the owner's identity.
func (a *Address) UserID() uint64 { return a.userID }

// AddressType returns whether this is a pickup or delivery address.
func (a *Address) AddressType() Type { return a.addressType }

// Name returns the short label, for example "Dorm 3".
func (a *Address) Name() string { return a.name }

// AddressDetail returns the full address text.
func (a *Address) AddressDetail() string { return a.addressDetail }

// ContactPerson returns the contact name.
func (a *Address) ContactPerson() string { return a.contactPerson }

// ContactPhone returns the contact phone.
func (a *Address) ContactPhone() string { return a.contactPhone }

// Notes returns free-form notes for the deliverer.
func (a *Address) Notes() string { return a.notes }

// IsDefault reports whether this is the default address for its type.
func (a *Address) IsDefault() bool { return a.isDefault }

// CreatedAt returns the creation time.
func (a *Address) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last modification time.
func (a *Address) UpdatedAt() time.Time { return a.updatedAt }
