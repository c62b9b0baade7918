package commands

import (
	"context"

	"campusrun/internal/core/domain/model/address"
)

// AddAddressCommandHandler handles saving a new address book entry. When
// the entry is marked default, the previous default of the same type is
// cleared in the same transaction so a user never has two defaults.
type AddAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewAddAddressCommandHandler creates a handler for address creation.
func NewAddAddressCommandHandler(uowFactory AddressUoWFactory) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add address command and returns the new entry's
// store-assigned identifier.
func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	entry, err := address.NewAddress(
		cmd.UserID(), cmd.AddressType(),
		cmd.Name(), cmd.AddressDetail(),
		cmd.ContactPerson(), cmd.ContactPhone(), cmd.Notes(),
		cmd.IsDefault(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	if cmd.IsDefault() {
		if err = addressRepo.ClearDefault(ctx, cmd.UserID(), cmd.AddressType()); err != nil {
			return 0, err
		}
	}

	if err = addressRepo.Add(ctx, entry); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return entry.ID(), nil
}
