// Package referencerepo reads the tables the marketplace treats as reference
// data: the location code table and the user table. Neither is written by
// this service outside of seeding.
package referencerepo

import (
	"time"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
)

// LocationCodeDTO is one row of the address-to-code table. The address triple is unique.
type LocationCodeDTO struct {
	Code         int64  `gorm:"primaryKey;autoIncrement:false"`
	City         string `gorm:"not null;uniqueIndex:idx_location_codes_address"`
	District     string `gorm:"not null;uniqueIndex:idx_location_codes_address"`
	Neighborhood string `gorm:"not null;uniqueIndex:idx_location_codes_address"`
}

func (LocationCodeDTO) TableName() string {
	return "location_codes"
}

// UserDTO carries the columns of the users table this service reads.
type UserDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func toLocationCode(dto LocationCodeDTO) (*location.LocationCode, error) {
	addr, err := kernel.NewAddress(dto.City, dto.District, dto.Neighborhood)
	if err != nil {
		return nil, err
	}

	return location.NewLocationCode(location.Code(dto.Code), addr)
}
