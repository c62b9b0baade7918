package delivererrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campusrun/internal/core/domain/model/deliverer"
	"campusrun/internal/pkg/errs"
)

// GormDelivererRepository implements DelivererRepository using GORM.
type GormDelivererRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormDelivererRepository creates a new GORM deliverer repository.
func NewGormDelivererRepository(db *gorm.DB, tracker aggregateTracker) *GormDelivererRepository {
	return &GormDelivererRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new deliverer and assigns the generated id back to the aggregate.
func (r *GormDelivererRepository) Add(ctx context.Context, aggregate *deliverer.Deliverer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing deliverer to the database.
func (r *GormDelivererRepository) Update(ctx context.Context, aggregate *deliverer.Deliverer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DelivererDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a deliverer by ID.
func (r *GormDelivererRepository) Get(ctx context.Context, id uint64) (*deliverer.Deliverer, error) {
	var dto DelivererDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliverer", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every deliverer, best rated first.
func (r *GormDelivererRepository) GetAll(ctx context.Context) ([]*deliverer.Deliverer, error) {
	var dtos []DelivererDTO
	if err := r.db.WithContext(ctx).Order("rating DESC, total_likes DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliverers := make([]*deliverer.Deliverer, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliverers = append(deliverers, d)
	}

	return deliverers, nil
}

// RecalculateRating recomputes the aggregate rating as the mean of review
// scores over the deliverer's completed rated orders. A single UPDATE with
// a subselect keeps the read and the write in one statement, so inside a
// transaction the new rating commits together with the review that caused
// it. Deliverers with no rated orders keep the starting rating.
func (r *GormDelivererRepository) RecalculateRating(ctx context.Context, delivererID uint64) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE deliverers
		SET rating = COALESCE((
			SELECT AVG(o.rating)::numeric(3,2)
			FROM orders o
			WHERE o.deliverer_id = deliverers.id
			  AND o.status = 'completed'
			  AND o.rating IS NOT NULL
		), ?)
		WHERE id = ?
	`, deliverer.RatingMax, delivererID).Error
}

// RatedDelivererIDs returns ids of deliverers with at least one completed
// rated order.
func (r *GormDelivererRepository) RatedDelivererIDs(ctx context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT deliverer_id
		FROM orders
		WHERE deliverer_id IS NOT NULL
		  AND status = 'completed'
		  AND rating IS NOT NULL
		ORDER BY deliverer_id
	`).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
