package addressrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campusrun/internal/core/domain/model/address"
	"campusrun/internal/pkg/errs"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new address and assigns the generated id back to the entry.
func (r *GormAddressRepository) Add(ctx context.Context, entry *address.Address) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := entry.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Update saves an existing address to the database.
func (r *GormAddressRepository) Update(ctx context.Context, entry *address.Address) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Get retrieves an address by ID.
func (r *GormAddressRepository) Get(ctx context.Context, id uint64) (*address.Address, error) {
	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwner retrieves all of a user's addresses, optionally filtered by
// type. Defaults sort first.
func (r *GormAddressRepository) GetByOwner(
	ctx context.Context, userID uint64, addressType address.Type,
) ([]*address.Address, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if addressType != address.TypeUnknown {
		query = query.Where("address_type = ?", addressType.String())
	}

	var dtos []AddressDTO
	if err := query.Order("is_default DESC, created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	addresses := make([]*address.Address, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, entry)
	}

	return addresses, nil
}

// GetDefault retrieves the user's default address of the given type.
func (r *GormAddressRepository) GetDefault(
	ctx context.Context, userID uint64, addressType address.Type,
) (*address.Address, error) {
	var dto AddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND address_type = ? AND is_default", userID, addressType.String()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("default address", addressType.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClearDefault removes the default mark from the user's addresses of the
// given type.
func (r *GormAddressRepository) ClearDefault(
	ctx context.Context, userID uint64, addressType address.Type,
) error {
	return r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("user_id = ? AND address_type = ? AND is_default", userID, addressType.String()).
		Update("is_default", false).
		Error
}

// Delete permanently removes an address row.
func (r *GormAddressRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&AddressDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id)
	}

	return nil
}
