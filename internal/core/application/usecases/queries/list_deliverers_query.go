package queries

import (
	"errors"
	"time"

	"campusrun/internal/pkg/guard"
)

var ErrListDeliverersQueryIsNotConstructed = errors.New(
	"ListDeliverersQuery must be created via NewListDeliverersQuery constructor",
)

// ListDeliverersQuery retrieves the deliverer directory, best rated first.
//
// Example:
//
//	query := NewListDeliverersQuery()
//	handler := NewListDeliverersQueryHandler(db)
//	deliverers, err := handler.Handle(ctx, query)
type ListDeliverersQuery struct {
	guard guard.ConstructorGuard
}

// NewListDeliverersQuery creates a parameterless directory query.
func NewListDeliverersQuery() ListDeliverersQuery {
	return ListDeliverersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDeliverersQuery) Validate() error {
	return q.guard.Validate(ErrListDeliverersQueryIsNotConstructed)
}

// DelivererResponse is the read model for one deliverer.
type DelivererResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Rating      float64   `json:"rating"`
	OnTimeRate  float64   `json:"on_time_rate"`
	DailyOrders int       `json:"daily_orders"`
	TotalLikes  int       `json:"total_likes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
