package redisstore

import (
	"context"
	"fmt"
	"log/slog"

	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// EventBus carries notification events over Redis pub/sub. Delivery is
// at-most-once: subscribers that are offline when an event is published miss it.
type EventBus struct {
	client  redis.UniversalClient
	channel string
	logger  *slog.Logger
}

func NewEventBus(client redis.UniversalClient, logger *slog.Logger) *EventBus {
	return &EventBus{
		client:  client,
		channel: notification.Channel,
		logger:  logger.With("component", "redis_event_bus"),
	}
}

func (b *EventBus) Publish(ctx context.Context, event notification.Event) error {
	body, err := notification.Encode(event)
	if err != nil {
		return err
	}

	if err = b.client.Publish(ctx, b.channel, body).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", b.channel, err)
	}

	b.logger.DebugContext(ctx, "event published",
		"channel", b.channel, "event_id", event.ID().String(), "type", event.Type().String())
	return nil
}

// Subscribe blocks, delivering events to handler until ctx is done.
func (b *EventBus) Subscribe(ctx context.Context, handler ports.EventHandler) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", b.channel, err)
	}

	b.logger.InfoContext(ctx, "subscribed", "channel", b.channel)

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			b.dispatch(ctx, []byte(msg.Payload), handler)
		}
	}
}

func (b *EventBus) dispatch(ctx context.Context, body []byte, handler ports.EventHandler) {
	event, err := notification.Decode(body)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to decode event", "channel", b.channel, "error", err)
		return
	}

	if err = handler(ctx, event); err != nil {
		b.logger.ErrorContext(ctx, "event handler failed",
			"channel", b.channel, "event_id", event.ID().String(), "error", err)
	}
}
