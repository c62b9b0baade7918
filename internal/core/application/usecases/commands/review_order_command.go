package commands

import (
	"errors"

	"campusrun/internal/core/domain/model/order"
	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrReviewOrderCommandIsNotConstructed = errors.New(
	"ReviewOrderCommand must be created via NewReviewOrderCommand constructor",
)

// ReviewOrderCommand represents a user rating a completed order.
// An order can be reviewed exactly once.
type ReviewOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	userID  uint64
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewReviewOrderCommand creates a command to review an order.
// The rating must be between order.RatingMin and order.RatingMax inclusive.
func NewReviewOrderCommand(orderID, userID uint64, rating int, comment string) (ReviewOrderCommand, error) {
	cmd := ReviewOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setRating(rating),
	); err != nil {
		return ReviewOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewOrderCommand) Validate() error {
	return c.guard.Validate(ErrReviewOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to review.
func (c ReviewOrderCommand) OrderID() uint64 {
	return c.orderID
}

// UserID returns the identity of the acting user.
func (c ReviewOrderCommand) UserID() uint64 {
	return c.userID
}

// Rating returns the review score.
func (c ReviewOrderCommand) Rating() int {
	return c.rating
}

// Comment returns the optional review comment.
func (c ReviewOrderCommand) Comment() string {
	return c.comment
}

func (c *ReviewOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *ReviewOrderCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}

func (c *ReviewOrderCommand) setRating(rating int) error {
	if rating < order.RatingMin || rating > order.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, order.RatingMin, order.RatingMax)
	}

	c.rating = rating
	return nil
}
