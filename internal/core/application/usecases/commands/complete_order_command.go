package commands

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the owner confirming receipt of an order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	userID  uint64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
func NewCompleteOrderCommand(orderID, userID uint64) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() uint64 {
	return c.orderID
}

// UserID returns the identity of the acting user.
func (c CompleteOrderCommand) UserID() uint64 {
	return c.userID
}

func (c *CompleteOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
