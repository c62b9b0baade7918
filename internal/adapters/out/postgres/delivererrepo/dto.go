// Package delivererrepo persists deliverer aggregates and owns the SQL that
// projects review scores into the aggregate rating column.
package delivererrepo

import (
	"time"

	"campusrun/internal/core/domain/model/deliverer"
)

// DelivererDTO represents the database structure for persisting deliverers.
type DelivererDTO struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Avatar      string  `gorm:"type:varchar(500)"`
	Phone       string  `gorm:"type:varchar(20)"`
	Rating      float64 `gorm:"type:decimal(3,2);not null"`
	OnTimeRate  float64 `gorm:"type:decimal(5,2);not null"`
	DailyOrders int     `gorm:"not null;default:0"`
	TotalLikes  int     `gorm:"not null;default:0"`
	Status      string  `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "deliverers".
func (DelivererDTO) TableName() string {
	return "deliverers"
}

func fromDomain(aggregate *deliverer.Deliverer) DelivererDTO {
	return DelivererDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Avatar:      aggregate.Avatar(),
		Phone:       aggregate.Phone(),
		Rating:      aggregate.Rating(),
		OnTimeRate:  aggregate.OnTimeRate(),
		DailyOrders: aggregate.DailyOrders(),
		TotalLikes:  aggregate.TotalLikes(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto DelivererDTO) (*deliverer.Deliverer, error) {
	status, err := deliverer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return deliverer.RehydrateDeliverer(
		dto.ID,
		dto.Name, dto.Avatar, dto.Phone,
		dto.Rating, dto.OnTimeRate,
		dto.DailyOrders, dto.TotalLikes,
		status,
		dto.CreatedAt,
	)
}
