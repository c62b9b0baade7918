package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListDeliverersQueryHandler reads the deliverer directory.
type ListDeliverersQueryHandler struct {
	db *gorm.DB
}

// NewListDeliverersQueryHandler creates a handler for directory queries.
func NewListDeliverersQueryHandler(db *gorm.DB) ListDeliverersQueryHandler {
	return ListDeliverersQueryHandler{db: db}
}

// Handle executes the directory listing, best rated first.
func (h ListDeliverersQueryHandler) Handle(
	ctx context.Context,
	query ListDeliverersQuery,
) ([]DelivererResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliverers := make([]DelivererResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			avatar,
			phone,
			rating,
			on_time_rate,
			daily_orders,
			total_likes,
			status,
			created_at
		FROM deliverers
		ORDER BY rating DESC, total_likes DESC, id
	`).Scan(&deliverers).Error
	if err != nil {
		return nil, err
	}

	return deliverers, nil
}
