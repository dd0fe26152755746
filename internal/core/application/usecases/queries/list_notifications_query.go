package queries

import (
	"context"
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/ports"
	"jobmarket/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

type ListNotificationsQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(userID kernel.ID) (ListNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	return ListNotificationsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) UserID() kernel.ID {
	return q.userID
}

// ListNotificationsQueryHandler returns the notifications recorded for a user, newest first.
type ListNotificationsQueryHandler struct {
	notifications ports.NotificationRepository
}

func NewListNotificationsQueryHandler(notifications ports.NotificationRepository) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{notifications: notifications}
}

func (h ListNotificationsQueryHandler) Handle(ctx context.Context, query ListNotificationsQuery) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.notifications.ListByRecipient(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	views := make([]NotificationView, 0, len(records))
	for _, n := range records {
		views = append(views, newNotificationView(n))
	}
	return views, nil
}
