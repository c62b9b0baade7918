package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campusrun/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Ownership is verified after the fetch so a
// missing order maps to not-found and a foreign order maps to not-owner.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders o
		LEFT JOIN deliverers d ON d.id = o.deliverer_id
		WHERE o.id = ?
	`, query.OrderID()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderResponse{}, err
	}

	if row.UserID != query.UserID() {
		return OrderResponse{}, errs.NewNotOwnerError("order", query.OrderID())
	}

	return row.toResponse(), nil
}
