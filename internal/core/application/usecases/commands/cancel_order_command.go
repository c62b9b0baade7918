package commands

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel a pending order.
// Carries the acting user so the handler can enforce ownership before
// touching the status.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	userID  uint64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID, userID uint64) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() uint64 {
	return c.orderID
}

// UserID returns the identity of the acting user.
func (c CancelOrderCommand) UserID() uint64 {
	return c.userID
}

func (c *CancelOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
