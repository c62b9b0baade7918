package queries

import (
	"errors"

	"campusrun/internal/core/domain/model/order"
	"campusrun/internal/pkg/errs"
	"campusrun/internal/pkg/guard"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of the acting user's orders, newest
// first, optionally narrowed to a single status.
//
// Example:
//
//	query, _ := NewListOrdersQuery(userID, "pending", 1, 20)
//	handler := NewListOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	userID   uint64
	status   string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the user's order history.
// An empty status means all statuses. Page numbers start at 1; out of
// range page sizes fall back to the default.
func NewListOrdersQuery(userID uint64, status string, page, pageSize int) (ListOrdersQuery, error) {
	if userID == 0 {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("userID")
	}
	if status != "" {
		if _, err := order.StatusFromString(status); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return ListOrdersQuery{
		userID:   userID,
		status:   status,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID returns the acting user's identity.
func (q ListOrdersQuery) UserID() uint64 { return q.userID }

// Status returns the status filter, empty for all.
func (q ListOrdersQuery) Status() string { return q.status }

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int { return q.page }

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int { return q.pageSize }

// ListOrdersQueryResponse is one page of order history plus the total
// match count for pagination controls.
type ListOrdersQueryResponse struct {
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Orders   []OrderResponse `json:"orders"`
}
