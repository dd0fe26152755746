package ports

import (
	"context"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notice"
)

// NoticeRepository defines the persistence contract for notices.
type NoticeRepository interface {
	// Add persists a new notice and assigns its identity and timestamps.
	Add(ctx context.Context, aggregate *notice.Notice) error

	// Update persists title and content and refreshes the update timestamp.
	Update(ctx context.Context, aggregate *notice.Notice) error

	// Get returns the notice or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*notice.Notice, error)

	// Remove physically deletes the notice. Removing an absent notice is an ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.ID) error
}

// NoticeReader serves the paginated notice list.
type NoticeReader interface {
	// ListPage returns up to limit notices after skipping offset, newest first,
	// together with the total number of notices.
	ListPage(ctx context.Context, offset, limit int) ([]*notice.Notice, int64, error)
}
