// Package noticerepo persists notices. Unlike postings and applications,
// notices are physically deleted.
package noticerepo

import (
	"time"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notice"
)

type NoticeDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AuthorID  int64     `gorm:"column:user_id;not null;index"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (NoticeDTO) TableName() string {
	return "notices"
}

func fromDomain(n *notice.Notice) NoticeDTO {
	return NoticeDTO{
		ID:        n.ID().Int64(),
		AuthorID:  n.AuthorID().Int64(),
		Title:     n.Title(),
		Content:   n.Content(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}
}

func toDomain(dto NoticeDTO) (*notice.Notice, error) {
	return notice.RestoreNotice(notice.Snapshot{
		ID:        kernel.ID(dto.ID),
		AuthorID:  kernel.ID(dto.AuthorID),
		Title:     dto.Title,
		Content:   dto.Content,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
