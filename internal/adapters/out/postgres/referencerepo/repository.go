package referencerepo

import (
	"context"
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
	"jobmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Resolve maps an address to its code. An unmapped address is an ObjectNotFoundError.
func (r *GormLocationRepository) Resolve(ctx context.Context, address kernel.Address) (location.Code, error) {
	if err := address.Validate(); err != nil {
		return 0, err
	}

	var dto LocationCodeDTO
	err := r.db.WithContext(ctx).
		Where("city = ? AND district = ? AND neighborhood = ?",
			address.City(), address.District(), address.Neighborhood()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("location", address.String())
		}
		return 0, err
	}

	return location.Code(dto.Code), nil
}

// Lookup maps a stored code back to its address. A code missing from the
// table is a ReferenceDataMissingError.
func (r *GormLocationRepository) Lookup(ctx context.Context, code location.Code) (*location.LocationCode, error) {
	var dto LocationCodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", int64(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewReferenceDataMissingError("location_codes", code.String())
		}
		return nil, err
	}

	loc, err := toLocationCode(dto)
	if err != nil {
		return nil, errs.NewReferenceDataMissingErrorWithCause("location_codes", code.String(), err)
	}
	return loc, nil
}

// Seed inserts reference rows, leaving existing codes untouched.
func (r *GormLocationRepository) Seed(ctx context.Context, rows []LocationCodeDTO) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	if id.Validate() != nil {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id.Int64()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
