// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"campusrun/internal/core/domain/model/kernel"
	"campusrun/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner and status because the history listing always filters on
// those two columns.
type OrderDTO struct {
	ID                   uint64  `gorm:"primaryKey;autoIncrement"`
	OrderNo              string  `gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID               uint64  `gorm:"index:idx_orders_user_status;not null"`
	DelivererID          *uint64 `gorm:"index"`
	StartAddress         string  `gorm:"type:varchar(255);not null"`
	EndAddress           string  `gorm:"type:varchar(255);not null"`
	OriginDetail         string  `gorm:"type:varchar(255)"`
	DestinationDetail    string  `gorm:"type:varchar(255)"`
	OriginLat            *float64
	OriginLng            *float64
	DestLat              *float64
	DestLng              *float64
	EstimatedDistanceKm  *float64
	EstimatedDurationMin *int
	ItemDescription      string          `gorm:"type:varchar(500)"`
	OrderImage           string          `gorm:"type:varchar(500)"`
	PickupCode           string          `gorm:"type:varchar(50)"`
	LockerNumber         string          `gorm:"type:varchar(50)"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CouponDiscount       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ActualAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status               string          `gorm:"type:varchar(20);index:idx_orders_user_status;not null"`
	Rating               *int
	Comment              *string `gorm:"type:varchar(500)"`
	ReviewedAt           *time.Time
	CreatedAt            time.Time `gorm:"not null"`
	AcceptedAt           *time.Time
	CompletedAt          *time.Time
	CancelledAt          *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                   aggregate.ID(),
		OrderNo:              aggregate.OrderNo().String(),
		UserID:               aggregate.UserID(),
		DelivererID:          aggregate.DelivererID(),
		StartAddress:         aggregate.StartAddress(),
		EndAddress:           aggregate.EndAddress(),
		OriginDetail:         aggregate.OriginDetail(),
		DestinationDetail:    aggregate.DestinationDetail(),
		EstimatedDistanceKm:  aggregate.EstimatedDistanceKm(),
		EstimatedDurationMin: aggregate.EstimatedDurationMin(),
		ItemDescription:      aggregate.ItemDescription(),
		OrderImage:           aggregate.OrderImage(),
		PickupCode:           aggregate.PickupCode(),
		LockerNumber:         aggregate.LockerNumber(),
		TotalAmount:          aggregate.TotalAmount().Decimal(),
		CouponDiscount:       aggregate.CouponDiscount().Decimal(),
		ActualAmount:         aggregate.ActualAmount().Decimal(),
		Status:               aggregate.Status().String(),
		CreatedAt:            aggregate.CreatedAt(),
		AcceptedAt:           aggregate.AcceptedAt(),
		CompletedAt:          aggregate.CompletedAt(),
		CancelledAt:          aggregate.CancelledAt(),
	}

	if origin := aggregate.OriginLocation(); origin != nil {
		lat, lng := origin.Lat(), origin.Lng()
		dto.OriginLat, dto.OriginLng = &lat, &lng
	}
	if dest := aggregate.DestLocation(); dest != nil {
		lat, lng := dest.Lat(), dest.Lng()
		dto.DestLat, dto.DestLng = &lat, &lng
	}
	if review := aggregate.Review(); review != nil {
		rating := review.Rating()
		comment := review.Comment()
		reviewedAt := review.ReviewedAt()
		dto.Rating, dto.Comment, dto.ReviewedAt = &rating, &comment, &reviewedAt
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RehydrateOrder so stored rows
// pass the same invariants as freshly built ones.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderNo, err := kernel.OrderNumberFromString(dto.OrderNo)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	couponDiscount, err := kernel.NewMoney(dto.CouponDiscount)
	if err != nil {
		return nil, err
	}
	actualAmount, err := kernel.NewMoney(dto.ActualAmount)
	if err != nil {
		return nil, err
	}

	params := order.RehydrateOrderParams{
		ID:                   dto.ID,
		OrderNo:              orderNo,
		UserID:               dto.UserID,
		DelivererID:          dto.DelivererID,
		StartAddress:         dto.StartAddress,
		EndAddress:           dto.EndAddress,
		OriginDetail:         dto.OriginDetail,
		DestinationDetail:    dto.DestinationDetail,
		EstimatedDistanceKm:  dto.EstimatedDistanceKm,
		EstimatedDurationMin: dto.EstimatedDurationMin,
		ItemDescription:      dto.ItemDescription,
		OrderImage:           dto.OrderImage,
		PickupCode:           dto.PickupCode,
		LockerNumber:         dto.LockerNumber,
		TotalAmount:          totalAmount,
		CouponDiscount:       couponDiscount,
		ActualAmount:         actualAmount,
		Status:               status,
		CreatedAt:            dto.CreatedAt,
		AcceptedAt:           dto.AcceptedAt,
		CompletedAt:          dto.CompletedAt,
		CancelledAt:          dto.CancelledAt,
	}

	if dto.OriginLat != nil && dto.OriginLng != nil {
		origin, originErr := kernel.NewGeoPoint(*dto.OriginLat, *dto.OriginLng)
		if originErr != nil {
			return nil, originErr
		}
		params.OriginLocation = &origin
	}
	if dto.DestLat != nil && dto.DestLng != nil {
		dest, destErr := kernel.NewGeoPoint(*dto.DestLat, *dto.DestLng)
		if destErr != nil {
			return nil, destErr
		}
		params.DestLocation = &dest
	}
	if dto.Rating != nil && dto.ReviewedAt != nil {
		var comment string
		if dto.Comment != nil {
			comment = *dto.Comment
		}
		review, reviewErr := order.NewReview(*dto.Rating, comment, *dto.ReviewedAt)
		if reviewErr != nil {
			return nil, reviewErr
		}
		params.Review = &review
	}

	return order.RehydrateOrder(params)
}
