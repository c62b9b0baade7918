package queries

import (
	"errors"

	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery summarizes the acting user's order history:
// per-status counts and the total actually spent on completed orders.
type GetOrderStatisticsQuery struct {
	userID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a statistics query for one user.
func NewGetOrderStatisticsQuery(userID uint64) (GetOrderStatisticsQuery, error) {
	if userID == 0 {
		return GetOrderStatisticsQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetOrderStatisticsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// UserID returns the acting user's identity.
func (q GetOrderStatisticsQuery) UserID() uint64 { return q.userID }

// GetOrderStatisticsQueryResponse carries the per-status counts plus the
// spend total. Deleted orders are gone from storage, so they are absent
// from every figure here.
type GetOrderStatisticsQueryResponse struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingCount    int64   `json:"pending_count"`
	AcceptedCount   int64   `json:"accepted_count"`
	DeliveringCount int64   `json:"delivering_count"`
	CompletedCount  int64   `json:"completed_count"`
	CancelledCount  int64   `json:"cancelled_count"`
	TotalSpent      float64 `json:"total_spent"`
}
