package commands

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrLikeDelivererCommandIsNotConstructed = errors.New(
	"LikeDelivererCommand must be created via NewLikeDelivererCommand constructor",
)

// LikeDelivererCommand represents a user liking or unliking a deliverer.
type LikeDelivererCommand struct { //nolint:recvcheck //using for validation
	delivererID uint64
	unlike      bool

	guard guard.ConstructorGuard
}

// NewLikeDelivererCommand creates a command to adjust a deliverer's like
// counter. Pass unlike=true to take a like back.
func NewLikeDelivererCommand(delivererID uint64, unlike bool) (LikeDelivererCommand, error) {
	cmd := LikeDelivererCommand{
		unlike: unlike,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setDelivererID(delivererID); err != nil {
		return LikeDelivererCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LikeDelivererCommand) Validate() error {
	return c.guard.Validate(ErrLikeDelivererCommandIsNotConstructed)
}

// DelivererID returns the identifier of the deliverer.
func (c LikeDelivererCommand) DelivererID() uint64 {
	return c.delivererID
}

// Unlike reports whether the like should be taken back.
func (c LikeDelivererCommand) Unlike() bool {
	return c.unlike
}

func (c *LikeDelivererCommand) setDelivererID(delivererID uint64) error {
	if delivererID == 0 {
		return errs.NewValueIsRequiredError("delivererID")
	}

	c.delivererID = delivererID
	return nil
}
