// Package commands contains business operations that modify system state.
// Every handler validates its command, runs the write inside a unit of work and
// performs side effects (cache invalidation, event publishing) only after the
// transaction commits.
package commands

import (
	"context"

	"jobmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	MatchingRepoFactory interface {
		MatchingRepository() ports.MatchingRepository
	}

	NoticeRepoFactory interface {
		NoticeRepository() ports.NoticeRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// JobUoW manages transactions for posting writes. Postings reference
	// users and location codes, so both are reachable inside the transaction.
	JobUoW interface {
		TxManager
		JobRepoFactory
		LocationRepoFactory
		UserRepoFactory
	}

	JobUoWFactory interface {
		Create() JobUoW
	}

	// MatchingUoW manages transactions for application writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   j, err := uow.JobRepository().Get(ctx, jobID)
	//   err = uow.MatchingRepository().Add(ctx, m)
	//
	//   err = uow.Commit(ctx)
	MatchingUoW interface {
		TxManager
		JobRepoFactory
		MatchingRepoFactory
		UserRepoFactory
	}

	MatchingUoWFactory interface {
		Create() MatchingUoW
	}

	NoticeUoW interface {
		TxManager
		NoticeRepoFactory
	}

	NoticeUoWFactory interface {
		Create() NoticeUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
