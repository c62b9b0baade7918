package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListAddressesQueryHandler reads the user's address book.
type ListAddressesQueryHandler struct {
	db *gorm.DB
}

// NewListAddressesQueryHandler creates a handler for address book listings.
func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

// Handle executes the listing, defaults first, then newest.
func (h ListAddressesQueryHandler) Handle(
	ctx context.Context,
	query ListAddressesQuery,
) ([]AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := `WHERE user_id = ?`
	args := []any{query.UserID()}
	if query.AddressType() != "" {
		where += ` AND address_type = ?`
		args = append(args, query.AddressType())
	}

	addresses := make([]AddressResponse, 0)
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
		`+where+`
		ORDER BY is_default DESC, created_at DESC, id DESC
	`, args...).Scan(&addresses).Error
	if err != nil {
		return nil, err
	}

	return addresses, nil
}
