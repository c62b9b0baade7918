package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDefaultAddressesQueryHandler reads the user's default addresses.
type GetDefaultAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetDefaultAddressesQueryHandler creates a handler for default address queries.
func NewGetDefaultAddressesQueryHandler(db *gorm.DB) GetDefaultAddressesQueryHandler {
	return GetDefaultAddressesQueryHandler{db: db}
}

// Handle executes the query. Missing defaults come back as nil fields,
// not errors, since a fresh account simply has none yet.
func (h GetDefaultAddressesQueryHandler) Handle(
	ctx context.Context,
	query GetDefaultAddressesQuery,
) (GetDefaultAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDefaultAddressesQueryResponse{}, err
	}

	defaults := make([]AddressResponse, 0, 2)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			address_type,
			name,
			address_detail,
			contact_person,
			contact_phone,
			notes,
			is_default,
			created_at,
			updated_at
		FROM addresses
		WHERE user_id = ? AND is_default
	`, query.UserID()).Scan(&defaults).Error
	if err != nil {
		return GetDefaultAddressesQueryResponse{}, err
	}

	var resp GetDefaultAddressesQueryResponse
	for i := range defaults {
		switch defaults[i].AddressType {
		case "pickup":
			resp.Pickup = &defaults[i]
		case "delivery":
			resp.Delivery = &defaults[i]
		}
	}

	return resp, nil
}
