package commands

import (
	"context"
)

// RecalculateRatingsCommandHandler runs the rating reconciliation sweep.
// Each deliverer is recomputed inside one transaction so a reader never
// observes a half-finished sweep.
type RecalculateRatingsCommandHandler struct {
	uowFactory DelivererUoWFactory
}

// NewRecalculateRatingsCommandHandler creates a handler for the sweep.
func NewRecalculateRatingsCommandHandler(uowFactory DelivererUoWFactory) RecalculateRatingsCommandHandler {
	return RecalculateRatingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle recomputes the rating of every deliverer with rated orders.
func (h *RecalculateRatingsCommandHandler) Handle(ctx context.Context, cmd RecalculateRatingsCommand) error {
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
	ids, err := delivererRepo.RatedDelivererIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err = delivererRepo.RecalculateRating(ctx, id); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
