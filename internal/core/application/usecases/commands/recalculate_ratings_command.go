package commands

import (
	"errors"

	"campusrun/internal/pkg/guard"
)

var ErrRecalculateRatingsCommandIsNotConstructed = errors.New(
	"RecalculateRatingsCommand must be created via NewRecalculateRatingsCommand constructor",
)

// RecalculateRatingsCommand triggers a sweep that recomputes the aggregate
// rating of every deliverer with at least one completed rated order. The
// review path keeps ratings current transactionally; this sweep exists to
// repair drift after manual data fixes or partial restores.
type RecalculateRatingsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewRecalculateRatingsCommand creates the sweep command.
func NewRecalculateRatingsCommand() (RecalculateRatingsCommand, error) {
	return RecalculateRatingsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateRatingsCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateRatingsCommandIsNotConstructed)
}
