package commands

import (
	"context"

	"jobmarket/internal/core/domain/model/notification"
)

// RecordNotificationCommandHandler turns a channel event into a stored
// notification. Redelivery of the same event is a no-op.
type RecordNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewRecordNotificationCommandHandler(uowFactory NotificationUoWFactory) RecordNotificationCommandHandler {
	return RecordNotificationCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether a new notification was written.
func (h RecordNotificationCommandHandler) Handle(ctx context.Context, cmd RecordNotificationCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	record, err := notification.FromEvent(cmd.Event())
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inserted, err := uow.NotificationRepository().Add(ctx, record)
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return inserted, nil
}
