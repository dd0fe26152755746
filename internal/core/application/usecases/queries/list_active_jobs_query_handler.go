package queries

import (
	"context"
	"log/slog"
	"time"

	"jobmarket/internal/core/application/cachekeys"
	"jobmarket/internal/core/ports"
)

// ListActiveJobsQueryHandler serves the active listing through the cache under
// cachekeys.ActiveJobs. Writers drop that key after each committed change, so
// staleness is bounded by the TTL only for concurrent races.
//
// Example:
//
//	handler := NewListActiveJobsQueryHandler(reader, cache, 5*time.Minute, logger)
//	jobs, err := handler.Handle(ctx, NewListActiveJobsQuery())
type ListActiveJobsQueryHandler struct {
	reader  ports.JobReader
	through readThrough[[]JobView]
}

func NewListActiveJobsQueryHandler(
	reader ports.JobReader,
	cache ports.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) ListActiveJobsQueryHandler {
	return ListActiveJobsQueryHandler{
		reader:  reader,
		through: newReadThrough[[]JobView](cache, ttl, logger.With("component", "list_active_jobs")),
	}
}

// Handle returns postings that are neither expired, matched nor deleted, newest first.
func (h ListActiveJobsQueryHandler) Handle(ctx context.Context, query ListActiveJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.through.load(ctx, cachekeys.ActiveJobs, h.fetch)
}

// Refresh reloads the listing from the store and rewrites the cache entry.
func (h ListActiveJobsQueryHandler) Refresh(ctx context.Context) (int, error) {
	views, err := h.through.refresh(ctx, cachekeys.ActiveJobs, h.fetch)
	return len(views), err
}

func (h ListActiveJobsQueryHandler) fetch(ctx context.Context) ([]JobView, error) {
	jobs, err := h.reader.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return newJobViews(jobs), nil
}
