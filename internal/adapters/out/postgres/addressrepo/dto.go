// Package addressrepo persists address book entries.
package addressrepo

import (
	"time"

	"campusrun/internal/core/domain/model/address"
)

// AddressDTO represents the database structure for address book entries.
type AddressDTO struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	UserID        uint64 `gorm:"index:idx_addresses_user_type;not null"`
	AddressType   string `gorm:"type:varchar(20);index:idx_addresses_user_type;not null"`
	Name          string `gorm:"type:varchar(100);not null"`
	AddressDetail string `gorm:"type:varchar(255);not null"`
	ContactPerson string `gorm:"type:varchar(100)"`
	ContactPhone  string `gorm:"type:varchar(20)"`
	Notes         string `gorm:"type:varchar(255)"`
	IsDefault     bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(entry *address.Address) AddressDTO {
	return AddressDTO{
		ID:            entry.ID(),
		UserID:        entry.UserID(),
		AddressType:   entry.AddressType().String(),
		Name:          entry.Name(),
		AddressDetail: entry.AddressDetail(),
		ContactPerson: entry.ContactPerson(),
		ContactPhone:  entry.ContactPhone(),
		Notes:         entry.Notes(),
		IsDefault:     entry.IsDefault(),
		CreatedAt:     entry.CreatedAt(),
		UpdatedAt:     entry.UpdatedAt(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	addressType, err := address.TypeFromString(dto.AddressType)
	if err != nil {
		return nil, err
	}

	return address.RehydrateAddress(
		dto.ID, dto.UserID,
		addressType,
		dto.Name, dto.AddressDetail,
		dto.ContactPerson, dto.ContactPhone, dto.Notes,
		dto.IsDefault,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
