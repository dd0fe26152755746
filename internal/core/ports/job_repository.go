// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories, the unit of work, the cache store and the
// notification channel.
package ports

import (
	"context"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
)

// JobRepository defines the persistence contract for job postings.
// Soft-deleted postings are invisible to every read.
type JobRepository interface {
	// Add persists a new posting and assigns its identity and creation time.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing posting.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get returns the posting or an ObjectNotFoundError when it is absent or soft-deleted.
	Get(ctx context.Context, id kernel.ID) (*job.Job, error)

	// Remove soft-deletes the posting.
	Remove(ctx context.Context, id kernel.ID) error
}

// JobReader serves the listing read paths.
type JobReader interface {
	// ListActive returns postings that are neither expired, matched nor
	// soft-deleted, newest first.
	ListActive(ctx context.Context) ([]*job.Job, error)

	// ListByLocation returns non-deleted postings stored under code, newest first.
	ListByLocation(ctx context.Context, code location.Code) ([]*job.Job, error)
}
