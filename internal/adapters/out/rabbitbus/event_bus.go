// Package rabbitbus carries notification events over a durable RabbitMQ
// queue. Messages are acknowledged manually once the handler succeeds.
package rabbitbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	prefetch       = 16
	publishTimeout = 5 * time.Second
)

// ErrDeliveriesClosed is returned by Subscribe when the broker closes the delivery stream.
var ErrDeliveriesClosed = errors.New("rabbitmq delivery channel closed")

// EventBus implements ports.EventPublisher and ports.EventSubscriber on RabbitMQ.
type EventBus struct {
	conn   *amqp.Connection
	mu     sync.Mutex
	pubCh  *amqp.Channel
	queue  string
	logger *slog.Logger
}

// Connect dials the broker and declares the durable queue.
func Connect(url, queue string, logger *slog.Logger) (*EventBus, error) {
	if queue == "" {
		queue = notification.Channel
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err = declare(ch, queue); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &EventBus{
		conn:   conn,
		pubCh:  ch,
		queue:  queue,
		logger: logger.With("component", "rabbitmq_event_bus", "queue", queue),
	}, nil
}

func declare(ch *amqp.Channel, queue string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return q, nil
}

// Publish sends a persistent message carrying the event id as its message id.
func (b *EventBus) Publish(ctx context.Context, event notification.Event) error {
	body, err := notification.Encode(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	err = b.pubCh.PublishWithContext(ctx,
		"",      // default exchange
		b.queue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID().String(),
			Type:         event.Type().String(),
			Timestamp:    event.OccurredAt(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event to RabbitMQ: %w", err)
	}
	return nil
}

// Subscribe consumes the queue on its own channel until ctx is done.
// Undecodable messages are dropped; handler failures are requeued.
func (b *EventBus) Subscribe(ctx context.Context, handler ports.EventHandler) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx,
		b.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	b.logger.InfoContext(ctx, "subscribed")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrDeliveriesClosed
			}
			b.dispatch(ctx, d, handler)
		}
	}
}

func (b *EventBus) dispatch(ctx context.Context, d amqp.Delivery, handler ports.EventHandler) {
	event, err := notification.Decode(d.Body)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to decode event", "message_id", d.MessageId, "error", err)
		_ = d.Nack(false, false)
		return
	}

	if err = handler(ctx, event); err != nil {
		b.logger.ErrorContext(ctx, "event handler failed", "event_id", event.ID().String(), "error", err)
		_ = d.Nack(false, true)
		return
	}

	if err = d.Ack(false); err != nil {
		b.logger.WarnContext(ctx, "failed to ack event", "event_id", event.ID().String(), "error", err)
	}
}

func (b *EventBus) Close() error {
	if b.conn == nil || b.conn.IsClosed() {
		return nil
	}
	return b.conn.Close()
}
