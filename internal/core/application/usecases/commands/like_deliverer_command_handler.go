package commands

import (
	"context"
)

// LikeDelivererCommandHandler handles like counter adjustments.
// The counter never drops below zero.
type LikeDelivererCommandHandler struct {
	uowFactory DelivererUoWFactory
}

// NewLikeDelivererCommandHandler creates a handler for deliverer likes.
func NewLikeDelivererCommandHandler(uowFactory DelivererUoWFactory) LikeDelivererCommandHandler {
	return LikeDelivererCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the like command.
func (h *LikeDelivererCommandHandler) Handle(ctx context.Context, cmd LikeDelivererCommand) error {
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

	delivererRepo := uow.DelivererRepository()
	aggregate, err := delivererRepo.Get(ctx, cmd.DelivererID())
	if err != nil {
		return err
	}

	if cmd.Unlike() {
		aggregate.Unlike()
	} else {
		aggregate.Like()
	}

	if err = delivererRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
