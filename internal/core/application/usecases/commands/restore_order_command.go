package commands

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrRestoreOrderCommandIsNotConstructed = errors.New(
	"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
)

// RestoreOrderCommand represents a request to move a cancelled order back
// to pending.
type RestoreOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	userID  uint64

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand creates a command to restore a cancelled order.
func NewRestoreOrderCommand(orderID, userID uint64) (RestoreOrderCommand, error) {
	cmd := RestoreOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return RestoreOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to restore.
func (c RestoreOrderCommand) OrderID() uint64 {
	return c.orderID
}

// UserID returns the identity of the acting user.
func (c RestoreOrderCommand) UserID() uint64 {
	return c.userID
}

func (c *RestoreOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *RestoreOrderCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
