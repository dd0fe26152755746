package queries

import (
	"context"
	"log/slog"
	"time"

	"jobmarket/internal/core/application/cachekeys"
	"jobmarket/internal/core/ports"
)

// ListNoticesPageQueryHandler serves notice pages through the cache. Each
// (page, limit) pair has its own entry, so different page sizes never share data.
type ListNoticesPageQueryHandler struct {
	reader  ports.NoticeReader
	through readThrough[NoticePage]
}

func NewListNoticesPageQueryHandler(
	reader ports.NoticeReader,
	cache ports.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) ListNoticesPageQueryHandler {
	return ListNoticesPageQueryHandler{
		reader:  reader,
		through: newReadThrough[NoticePage](cache, ttl, logger.With("component", "list_notices_page")),
	}
}

// Handle returns the requested page, newest first. A page past the end has no
// data but still carries the list totals.
func (h ListNoticesPageQueryHandler) Handle(ctx context.Context, query ListNoticesPageQuery) (NoticePage, error) {
	if err := query.Validate(); err != nil {
		return NoticePage{}, err
	}

	return h.through.load(ctx, cachekeys.NoticePage(query.Page(), query.Limit()), h.fetch(query))
}

// Refresh reloads one page from the store and rewrites its cache entry.
func (h ListNoticesPageQueryHandler) Refresh(ctx context.Context, query ListNoticesPageQuery) (NoticePage, error) {
	if err := query.Validate(); err != nil {
		return NoticePage{}, err
	}

	return h.through.refresh(ctx, cachekeys.NoticePage(query.Page(), query.Limit()), h.fetch(query))
}

func (h ListNoticesPageQueryHandler) fetch(query ListNoticesPageQuery) func(context.Context) (NoticePage, error) {
	return func(ctx context.Context) (NoticePage, error) {
		notices, total, err := h.reader.ListPage(ctx, query.Offset(), query.Limit())
		if err != nil {
			return NoticePage{}, err
		}

		data := make([]NoticeView, 0, len(notices))
		for _, n := range notices {
			data = append(data, NewNoticeView(n))
		}

		return NoticePage{
			Data: data,
			Meta: PageMeta{
				TotalItems:   total,
				CurrentPage:  query.Page(),
				ItemsPerPage: query.Limit(),
				TotalPages:   totalPages(total, query.Limit()),
			},
		}, nil
	}
}

func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
