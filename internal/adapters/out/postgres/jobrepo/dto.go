// Package jobrepo persists job postings with GORM. Postings are soft-deleted
// through gorm.DeletedAt, so every default query skips removed rows.
package jobrepo

import (
	"time"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"

	"gorm.io/gorm"
)

// JobDTO is the row layout of the jobs table.
type JobDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID      int64  `gorm:"not null;index"`
	Title        string `gorm:"not null"`
	Content      string `gorm:"type:text;not null"`
	PhotoURL     *string
	Price        int64 `gorm:"not null"`
	LocationCode int64 `gorm:"not null;index"`
	Category     string
	Expired      bool `gorm:"not null"`
	Matched      bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

// mutableColumns are written by Update; identity, owner and creation time never change.
var mutableColumns = []string{
	"title", "content", "photo_url", "price", "location_code", "category", "expired", "matched", "updated_at",
}

func fromDomain(j *job.Job) JobDTO {
	d := j.Details()
	return JobDTO{
		ID:           j.ID().Int64(),
		OwnerID:      j.OwnerID().Int64(),
		Title:        d.Title,
		Content:      d.Content,
		PhotoURL:     d.PhotoURL,
		Price:        d.Price,
		LocationCode: int64(j.Location()),
		Category:     d.Category,
		Expired:      j.IsExpired(),
		Matched:      j.IsMatched(),
		CreatedAt:    j.CreatedAt(),
		UpdatedAt:    j.UpdatedAt(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		deletedAt = &dto.DeletedAt.Time
	}

	return job.RestoreJob(job.Snapshot{
		ID:      kernel.ID(dto.ID),
		OwnerID: kernel.ID(dto.OwnerID),
		Details: job.Details{
			Title:    dto.Title,
			Content:  dto.Content,
			PhotoURL: dto.PhotoURL,
			Price:    dto.Price,
			Category: dto.Category,
		},
		Location:  location.Code(dto.LocationCode),
		Expired:   dto.Expired,
		Matched:   dto.Matched,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		DeletedAt: deletedAt,
	})
}

func toDomainList(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
