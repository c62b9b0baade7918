package kernel

import (
	"fmt"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"

	"github.com/google/uuid"
)

// orderNumberLength is the length of the external order token: a UUID
// rendered as 32 lowercase hex characters without dashes.
const orderNumberLength = 32

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value
// OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is the opaque, unique, external-facing token of an order.
// Internally orders are keyed by a numeric row id, which is never exposed
// as an identity to anything outside the service; the order number is what
// clients see and quote.
type OrderNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber generates a fresh random order number.
func NewOrderNumber() OrderNumber {
	raw := uuid.New()
	value := fmt.Sprintf("%x", raw[:])
	return OrderNumber{value: value, guard: guard.NewConstructorGuard()}
}

// OrderNumberFromString reconstructs an OrderNumber from its persisted
// representation. Returns an error unless the string is exactly 32
// lowercase hex characters.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}
	if len(s) != orderNumberLength {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("length %d, want %d", len(s), orderNumberLength))
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number",
				fmt.Errorf("%q is not lowercase hex", s))
		}
	}
	return OrderNumber{value: s, guard: guard.NewConstructorGuard()}, nil
}

// String returns the token text.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate ensures the OrderNumber was created through a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
