// Package consumer drives application commands from the notification channel.
package consumer

import (
	"context"
	"log/slog"

	"jobmarket/internal/core/application/usecases/commands"
	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/core/ports"
)

// NotificationConsumer records a notification for the recipient of every
// event on the channel. Duplicate deliveries are absorbed by the store.
//
// Example:
//
//	c := consumer.NewNotificationConsumer(bus, handler, logger)
//	go func() { _ = c.Run(ctx) }()
type NotificationConsumer struct {
	subscriber ports.EventSubscriber
	handler    commands.RecordNotificationCommandHandler
	logger     *slog.Logger
}

func NewNotificationConsumer(
	subscriber ports.EventSubscriber,
	handler commands.RecordNotificationCommandHandler,
	logger *slog.Logger,
) *NotificationConsumer {
	return &NotificationConsumer{
		subscriber: subscriber,
		handler:    handler,
		logger:     logger.With("component", "notification_consumer"),
	}
}

// Run blocks until ctx is done or the subscription fails.
func (c *NotificationConsumer) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "notification consumer started", "channel", notification.Channel)
	defer c.logger.Info("notification consumer stopped")

	return c.subscriber.Subscribe(ctx, c.Handle)
}

// Handle records one event. A returned error asks the channel to redeliver.
func (c *NotificationConsumer) Handle(ctx context.Context, event notification.Event) error {
	cmd, err := commands.NewRecordNotificationCommand(event)
	if err != nil {
		return err
	}

	inserted, err := c.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	if !inserted {
		c.logger.DebugContext(ctx, "duplicate event ignored", "event_id", event.ID().String())
		return nil
	}

	c.logger.InfoContext(ctx, "notification recorded",
		"event_id", event.ID().String(),
		"type", event.Type().String(),
		"recipient_id", event.Recipient().Int64())
	return nil
}
