// Package notificationrepo stores the per-recipient records the notification
// consumer writes. The event id column is unique, which makes redelivery of
// the same event a no-op.
package notificationrepo

import (
	"time"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	RecipientID int64     `gorm:"not null;index"`
	Type        string    `gorm:"not null"`
	JobID       int64     `gorm:"not null"`
	CustomerID  int64     `gorm:"not null"`
	OwnerID     int64     `gorm:"not null"`
	CreatedAt   time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Int64(),
		EventID:     n.EventID().Bytes(),
		RecipientID: n.RecipientID().Int64(),
		Type:        n.Type().String(),
		JobID:       n.JobID().Int64(),
		CustomerID:  n.CustomerID().Int64(),
		OwnerID:     n.OwnerID().Int64(),
		CreatedAt:   n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	eventID, err := kernel.UUIDFromString(dto.EventID.String())
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(notification.Snapshot{
		ID:          kernel.ID(dto.ID),
		EventID:     eventID,
		RecipientID: kernel.ID(dto.RecipientID),
		Type:        notification.Type(dto.Type),
		JobID:       kernel.ID(dto.JobID),
		CustomerID:  kernel.ID(dto.CustomerID),
		OwnerID:     kernel.ID(dto.OwnerID),
		CreatedAt:   dto.CreatedAt,
	})
}
