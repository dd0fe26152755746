package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"jobmarket/internal/core/application/cachekeys"
	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/core/ports"
)

// DefaultPublishTimeout bounds a single publish when none is configured.
const DefaultPublishTimeout = 5 * time.Second

// CacheInvalidator clears read-path cache entries after a committed write.
// Failures are logged and never returned: the write already succeeded and the
// stale entry expires with its TTL.
type CacheInvalidator struct {
	cache  ports.Cache
	logger *slog.Logger
}

// NewCacheInvalidator returns an invalidator over cache. The logger receives
// the failures it swallows.
func NewCacheInvalidator(cache ports.Cache, logger *slog.Logger) CacheInvalidator {
	return CacheInvalidator{
		cache:  cache,
		logger: logger.With("component", "cache_invalidator"),
	}
}

// ActiveJobs drops the cached active listing.
func (i CacheInvalidator) ActiveJobs(ctx context.Context) {
	if err := i.cache.Delete(context.WithoutCancel(ctx), cachekeys.ActiveJobs); err != nil {
		i.logger.WarnContext(ctx, "failed to invalidate cache", "key", cachekeys.ActiveJobs, "error", err)
	}
}

// NoticePages drops every cached notice page.
func (i CacheInvalidator) NoticePages(ctx context.Context) {
	if err := i.cache.DeleteByPrefix(context.WithoutCancel(ctx), cachekeys.NoticePagePrefix); err != nil {
		i.logger.WarnContext(ctx, "failed to invalidate cache", "prefix", cachekeys.NoticePagePrefix, "error", err)
	}
}

// EventNotifier publishes notification events after a committed write.
// Each publish runs in the background, detached from the caller's
// cancellation and bounded by a timeout; its failure is logged and swallowed.
// Drain waits for publishes still in flight.
type EventNotifier struct {
	publisher ports.EventPublisher
	timeout   time.Duration
	inflight  *sync.WaitGroup
	logger    *slog.Logger
}

// NewEventNotifier returns a notifier publishing through publisher. A
// non-positive timeout falls back to DefaultPublishTimeout.
func NewEventNotifier(publisher ports.EventPublisher, timeout time.Duration, logger *slog.Logger) EventNotifier {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return EventNotifier{
		publisher: publisher,
		timeout:   timeout,
		inflight:  &sync.WaitGroup{},
		logger:    logger.With("component", "event_notifier"),
	}
}

// Notify schedules the publish of event and returns immediately.
func (n EventNotifier) Notify(ctx context.Context, event notification.Event) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)

	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		defer cancel()
		n.publish(publishCtx, event)
	}()
}

// Drain blocks until every scheduled publish has finished or ctx is done.
func (n EventNotifier) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n EventNotifier) publish(ctx context.Context, event notification.Event) {
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish event",
			"channel", notification.Channel,
			"event_id", event.ID().String(),
			"type", event.Type().String(),
			"error", err,
		)
		return
	}

	n.logger.DebugContext(ctx, "event published", "event_id", event.ID().String(), "type", event.Type().String())
}
