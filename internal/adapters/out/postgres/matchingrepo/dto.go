// Package matchingrepo persists job applications. Withdrawn applications are
// soft-deleted and hidden from every default query.
package matchingrepo

import (
	"time"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/matching"

	"gorm.io/gorm"
)

type MatchingDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID int64 `gorm:"not null;index"`
	JobID      int64 `gorm:"not null;index"`
	Matched    bool  `gorm:"not null"`
	Rejected   bool  `gorm:"not null"`
	CreatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (MatchingDTO) TableName() string {
	return "matchings"
}

func fromDomain(m *matching.Matching) MatchingDTO {
	return MatchingDTO{
		ID:         m.ID().Int64(),
		CustomerID: m.CustomerID().Int64(),
		JobID:      m.JobID().Int64(),
		Matched:    m.IsMatched(),
		Rejected:   m.IsRejected(),
		CreatedAt:  m.CreatedAt(),
	}
}

func toDomain(dto MatchingDTO) (*matching.Matching, error) {
	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		deletedAt = &dto.DeletedAt.Time
	}

	return matching.RestoreMatching(matching.Snapshot{
		ID:         kernel.ID(dto.ID),
		CustomerID: kernel.ID(dto.CustomerID),
		JobID:      kernel.ID(dto.JobID),
		Matched:    dto.Matched,
		Rejected:   dto.Rejected,
		CreatedAt:  dto.CreatedAt,
		DeletedAt:  deletedAt,
	})
}
