package commands

import (
	"context"
)

// ReviewOrderCommandHandler handles review submission for completed orders.
// When the order is linked to a deliverer, the deliverer's aggregate rating
// is recomputed in the same transaction, so a committed review and the
// rating it feeds into are never observed apart.
type ReviewOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewReviewOrderCommandHandler creates a handler for order reviews.
// Requires a cross-aggregate UoWFactory because the review touches both the
// order and its deliverer.
func NewReviewOrderCommandHandler(uowFactory UoWFactory) ReviewOrderCommandHandler {
	return ReviewOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command. Ownership is checked before the
// status guard; an already reviewed order is a status conflict.
func (h *ReviewOrderCommandHandler) Handle(ctx context.Context, cmd ReviewOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureOwnedBy(cmd.UserID()); err != nil {
		return err
	}

	if err = aggregate.SetReview(cmd.Rating(), cmd.Comment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if delivererID := aggregate.DelivererID(); delivererID != nil {
		if err = uow.DelivererRepository().RecalculateRating(ctx, *delivererID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
