package ports

import (
	"context"

	"jobmarket/internal/core/domain/model/notification"
)

// EventPublisher hands notification events to the channel. It does not wait
// for any consumer.
type EventPublisher interface {
	Publish(ctx context.Context, event notification.Event) error
}

// EventHandler processes one delivered event. Returning an error asks the
// channel to redeliver when it supports redelivery.
type EventHandler func(ctx context.Context, event notification.Event) error

// EventSubscriber delivers channel events to a handler until ctx is done.
// Delivery is at-least-once and unordered.
type EventSubscriber interface {
	Subscribe(ctx context.Context, handler EventHandler) error
}
