package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderStatisticsQueryHandler computes the user's order statistics in
// a single aggregate query. Spend counts the actual amount, so coupon
// discounts never inflate the figure.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for statistics queries.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle executes the statistics query.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	var resp GetOrderStatisticsQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = 'pending')    AS pending_count,
			COUNT(*) FILTER (WHERE status = 'accepted')   AS accepted_count,
			COUNT(*) FILTER (WHERE status = 'delivering') AS delivering_count,
			COUNT(*) FILTER (WHERE status = 'completed')  AS completed_count,
			COUNT(*) FILTER (WHERE status = 'cancelled')  AS cancelled_count,
			COALESCE(SUM(actual_amount) FILTER (WHERE status = 'completed'), 0) AS total_spent
		FROM orders
		WHERE user_id = ?
	`, query.UserID()).Scan(&resp).Error
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	return resp, nil
}
