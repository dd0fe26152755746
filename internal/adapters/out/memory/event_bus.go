package memory

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/core/ports"
)

// ErrEventBusClosed is returned by Publish after Close.
var ErrEventBusClosed = errors.New("event bus is closed")

// EventBus fans published events out to every active subscriber through
// buffered channels. Events are encoded and decoded on the way through so
// subscribers see exactly what a network channel would deliver.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[int]chan []byte
	nextID      int
	buffer      int
	closed      bool
	logger      *slog.Logger
}

func NewEventBus(buffer int, logger *slog.Logger) *EventBus {
	if buffer <= 0 {
		buffer = 64
	}
	return &EventBus{
		subscribers: make(map[int]chan []byte),
		buffer:      buffer,
		logger:      logger.With("component", "memory_event_bus"),
	}
}

// Publish hands the event to every subscriber. It blocks while a subscriber's
// buffer is full, until ctx is done.
func (b *EventBus) Publish(ctx context.Context, event notification.Event) error {
	body, err := notification.Encode(event)
	if err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrEventBusClosed
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- body:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Subscribe delivers events to handler until ctx is done or the bus is closed.
// Handler errors are logged; the in-memory bus has no redelivery.
func (b *EventBus) Subscribe(ctx context.Context, handler ports.EventHandler) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrEventBusClosed
	}
	id := b.nextID
	b.nextID++
	ch := make(chan []byte, b.buffer)
	b.subscribers[id] = ch
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		if _, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(ch)
		}
		b.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case body, ok := <-ch:
			if !ok {
				return nil
			}
			event, err := notification.Decode(body)
			if err != nil {
				b.logger.ErrorContext(ctx, "failed to decode event", "channel", notification.Channel, "error", err)
				continue
			}
			if err = handler(ctx, event); err != nil {
				b.logger.ErrorContext(ctx, "event handler failed", "event_id", event.ID().String(), "error", err)
			}
		}
	}
}

// Close stops every subscription.
func (b *EventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
	return nil
}
