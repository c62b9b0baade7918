package commands

import (
	"context"
)

// DeleteAddressCommandHandler handles removal of an address book entry.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeleteAddressCommandHandler creates a handler for address deletion.
func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command after verifying ownership.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	entry, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	if err = entry.EnsureOwnedBy(cmd.UserID()); err != nil {
		return err
	}

	if err = addressRepo.Delete(ctx, entry.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
