package matchingrepo

import (
	"context"
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/matching"
	"jobmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMatchingRepository implements ports.MatchingRepository using GORM.
type GormMatchingRepository struct {
	db *gorm.DB
}

func NewGormMatchingRepository(db *gorm.DB) *GormMatchingRepository {
	return &GormMatchingRepository{db: db}
}

func (r *GormMatchingRepository) Add(ctx context.Context, aggregate *matching.Matching) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignIdentity(kernel.ID(dto.ID), dto.CreatedAt)
}

// Update persists the decision flags of a pending application. The write only
// matches a row that is still undecided, so of two concurrent decisions the
// second fails with matching.ErrAlreadyDecided instead of overwriting the first.
func (r *GormMatchingRepository) Update(ctx context.Context, aggregate *matching.Matching) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MatchingDTO{ID: dto.ID}).
		Where("matched = ? AND rejected = ?", false, false).
		Select("matched", "rejected").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&MatchingDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("matching", aggregate.ID().String())
	}

	return matching.ErrAlreadyDecided
}

func (r *GormMatchingRepository) Get(ctx context.Context, id kernel.ID) (*matching.Matching, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MatchingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("matching", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove soft-deletes the application.
func (r *GormMatchingRepository) Remove(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MatchingDTO{}, id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("matching", id.String())
	}

	return nil
}
