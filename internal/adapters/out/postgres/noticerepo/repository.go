package noticerepo

import (
	"context"
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notice"
	"jobmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNoticeRepository implements ports.NoticeRepository and ports.NoticeReader using GORM.
type GormNoticeRepository struct {
	db *gorm.DB
}

func NewGormNoticeRepository(db *gorm.DB) *GormNoticeRepository {
	return &GormNoticeRepository{db: db}
}

func (r *GormNoticeRepository) Add(ctx context.Context, aggregate *notice.Notice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignIdentity(kernel.ID(dto.ID), dto.CreatedAt)
}

// Update writes title and content; GORM refreshes updated_at.
func (r *GormNoticeRepository) Update(ctx context.Context, aggregate *notice.Notice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&NoticeDTO{ID: dto.ID}).
		Select("title", "content", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notice", aggregate.ID().String())
	}

	return nil
}

func (r *GormNoticeRepository) Get(ctx context.Context, id kernel.ID) (*notice.Notice, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("notice", id.String(), err)
	}

	var dto NoticeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormNoticeRepository) Remove(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Delete(&NoticeDTO{}, id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notice", id.String())
	}

	return nil
}

// ListPage returns one page of notices, newest first, with the total count.
func (r *GormNoticeRepository) ListPage(ctx context.Context, offset, limit int) ([]*notice.Notice, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&NoticeDTO{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []NoticeDTO
	err := db.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&dtos).Error
	if err != nil {
		return nil, 0, err
	}

	notices := make([]*notice.Notice, 0, len(dtos))
	for _, dto := range dtos {
		n, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, 0, mapErr
		}
		notices = append(notices, n)
	}

	return notices, total, nil
}
