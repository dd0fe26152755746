// Package natsbus carries notification events over a NATS JetStream stream.
// Events are stored in the stream until a durable consumer acknowledges them,
// so delivery to the notification consumer is at-least-once.
package natsbus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/core/ports"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	StreamName   = "NOTIFICATIONS"
	ConsumerName = "notification-consumer"

	connectAttempts = 10
	connectDelay    = 2 * time.Second
	// duplicateWindow bounds how long the stream remembers message ids for dedup.
	duplicateWindow = 2 * time.Minute
)

// Config describes where the stream lives.
type Config struct {
	URL      string
	Subject  string
	Consumer string
}

// EventBus implements ports.EventPublisher and ports.EventSubscriber on JetStream.
type EventBus struct {
	nc       *nats.Conn
	js       jetstream.JetStream
	stream   jetstream.Stream
	subject  string
	consumer string
	logger   *slog.Logger
}

// Connect dials NATS, retrying while the server comes up, and makes sure the
// stream exists.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*EventBus, error) {
	logger = logger.With("component", "nats_event_bus")
	if cfg.Subject == "" {
		cfg.Subject = notification.Channel
	}
	if cfg.Consumer == "" {
		cfg.Consumer = ConsumerName
	}

	nc, err := dial(ctx, cfg.URL, logger)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       StreamName,
		Subjects:   []string{cfg.Subject},
		Storage:    jetstream.FileStorage,
		Duplicates: duplicateWindow,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", StreamName, err)
	}

	logger.InfoContext(ctx, "NATS JetStream event bus initialized", "stream", StreamName, "subject", cfg.Subject)

	return &EventBus{
		nc:       nc,
		js:       js,
		stream:   stream,
		subject:  cfg.Subject,
		consumer: cfg.Consumer,
		logger:   logger,
	}, nil
}

func dial(ctx context.Context, url string, logger *slog.Logger) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.Timeout(10 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("NATS reconnected", "url", url)
		}),
	}

	var (
		nc  *nats.Conn
		err error
	)
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		nc, err = nats.Connect(url, opts...)
		if err == nil {
			return nc, nil
		}

		logger.WarnContext(ctx, "failed to connect to NATS, retrying", "url", url, "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts: %w", connectAttempts, err)
}

// Publish stores the event in the stream. The event id doubles as the
// JetStream message id, so a retried publish inside the duplicate window is dropped.
func (b *EventBus) Publish(ctx context.Context, event notification.Event) error {
	body, err := notification.Encode(event)
	if err != nil {
		return err
	}

	ack, err := b.js.Publish(ctx, b.subject, body, jetstream.WithMsgID(event.ID().String()))
	if err != nil {
		return fmt.Errorf("failed to publish event to NATS: %w", err)
	}

	b.logger.DebugContext(ctx, "event published",
		"subject", b.subject,
		"event_id", event.ID().String(),
		"stream_sequence", ack.Sequence,
		"duplicate", ack.Duplicate)
	return nil
}

// Subscribe attaches the durable consumer and blocks until ctx is done.
// Undecodable messages are terminated; handler failures are redelivered.
func (b *EventBus) Subscribe(ctx context.Context, handler ports.EventHandler) error {
	consumer, err := b.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       b.consumer,
		FilterSubject: b.subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	consCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		b.dispatch(ctx, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	b.logger.InfoContext(ctx, "subscribed", "subject", b.subject, "consumer", b.consumer)

	<-ctx.Done()
	consCtx.Stop()
	b.logger.Info("NATS subscriber stopped")
	return nil
}

func (b *EventBus) dispatch(ctx context.Context, msg jetstream.Msg, handler ports.EventHandler) {
	event, err := notification.Decode(msg.Data())
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to decode event", "subject", msg.Subject(), "error", err)
		_ = msg.Term()
		return
	}

	if err = handler(ctx, event); err != nil {
		b.logger.ErrorContext(ctx, "event handler failed", "event_id", event.ID().String(), "error", err)
		_ = msg.Nak()
		return
	}

	if err = msg.Ack(); err != nil {
		b.logger.WarnContext(ctx, "failed to ack event", "event_id", event.ID().String(), "error", err)
	}
}

func (b *EventBus) Close() error {
	if b.nc != nil && !b.nc.IsClosed() {
		b.nc.Close()
	}
	return nil
}
