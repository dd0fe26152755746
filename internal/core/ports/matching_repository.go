package ports

import (
	"context"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/matching"
)

// MatchingRepository defines the persistence contract for job applications.
type MatchingRepository interface {
	// Add persists a new application and assigns its identity and creation time.
	Add(ctx context.Context, aggregate *matching.Matching) error

	// Update persists the matched/rejected flags of a pending application.
	// It fails with matching.ErrAlreadyDecided when the stored row is no longer
	// pending, and with an ObjectNotFoundError when it is absent or withdrawn.
	Update(ctx context.Context, aggregate *matching.Matching) error

	// Get returns the application or an ObjectNotFoundError when it is absent or withdrawn.
	Get(ctx context.Context, id kernel.ID) (*matching.Matching, error)

	// Remove soft-deletes the application.
	Remove(ctx context.Context, id kernel.ID) error
}
