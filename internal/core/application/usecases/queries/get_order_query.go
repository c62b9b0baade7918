package queries

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order. The acting user must own the
// order; a foreign order produces a not-owner error, never a not-found,
// so the two cases stay distinguishable at the edge.
type GetOrderQuery struct {
	orderID uint64
	userID  uint64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID, userID uint64) (GetOrderQuery, error) {
	if orderID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	if userID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetOrderQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() uint64 { return q.orderID }

// UserID returns the acting user's identity.
func (q GetOrderQuery) UserID() uint64 { return q.userID }
