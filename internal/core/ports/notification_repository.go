package ports

import (
	"context"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notification"
)

// NotificationRepository stores the per-recipient record of delivered events.
type NotificationRepository interface {
	// Add stores n unless a record for the same event id already exists.
	// It reports whether a row was written.
	Add(ctx context.Context, n *notification.Notification) (bool, error)

	// ListByRecipient returns a user's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientID kernel.ID) ([]*notification.Notification, error)
}
