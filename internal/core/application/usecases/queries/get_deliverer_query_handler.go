package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campusrun/internal/pkg/errs"
)

// GetDelivererQueryHandler reads one deliverer profile from the database.
type GetDelivererQueryHandler struct {
	db *gorm.DB
}

// NewGetDelivererQueryHandler creates a handler for deliverer profile queries.
func NewGetDelivererQueryHandler(db *gorm.DB) GetDelivererQueryHandler {
	return GetDelivererQueryHandler{db: db}
}

// Handle executes the profile query.
func (h GetDelivererQueryHandler) Handle(
	ctx context.Context,
	query GetDelivererQuery,
) (DelivererResponse, error) {
	if err := query.Validate(); err != nil {
		return DelivererResponse{}, err
	}

	var resp DelivererResponse
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
		WHERE id = ?
	`, query.DelivererID()).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DelivererResponse{}, errs.NewObjectNotFoundError("deliverer", query.DelivererID())
		}
		return DelivererResponse{}, err
	}

	return resp, nil
}
