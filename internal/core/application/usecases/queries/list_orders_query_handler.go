package queries

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the user's order history from the database.
// The listing joins the deliverer directory so clients can show who is
// carrying the order without a second request.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Orders are returned newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := `WHERE o.user_id = ?`
	args := []any{query.UserID()}
	if query.Status() != "" {
		where += ` AND o.status = ?`
		args = append(args, query.Status())
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM orders o `+where, args...,
	).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows := make([]orderRow, 0, query.PageSize())
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders o
		LEFT JOIN deliverers d ON d.id = o.deliverer_id
		`+where+`
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Scan(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
		Orders:   lo.Map(rows, func(row orderRow, _ int) OrderResponse { return row.toResponse() }),
	}, nil
}
