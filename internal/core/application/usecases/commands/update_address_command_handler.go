package commands

import (
	"context"
)

// UpdateAddressCommandHandler handles edits to an address book entry.
// Promoting an entry to default demotes the previous default of the same
// type inside the same transaction.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Ownership is checked before any
// field changes.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
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

	if err = entry.Update(
		cmd.Name(), cmd.AddressDetail(),
		cmd.ContactPerson(), cmd.ContactPhone(), cmd.Notes(),
	); err != nil {
		return err
	}

	switch {
	case cmd.IsDefault() && !entry.IsDefault():
		if err = addressRepo.ClearDefault(ctx, entry.UserID(), entry.AddressType()); err != nil {
			return err
		}
		entry.MakeDefault()
	case !cmd.IsDefault() && entry.IsDefault():
		entry.ClearDefault()
	}

	if err = addressRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
