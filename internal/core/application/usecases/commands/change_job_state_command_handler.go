package commands

import (
	"context"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/ports"
)

// ChangeJobStateCommandHandler runs the owner-only state changes of a posting:
// mark matched, mark expired and remove. Each loads the posting, checks
// ownership, writes, commits and then drops the cached active listing.
type ChangeJobStateCommandHandler struct {
	uowFactory  JobUoWFactory
	invalidator CacheInvalidator
}

func NewChangeJobStateCommandHandler(uowFactory JobUoWFactory, invalidator CacheInvalidator) ChangeJobStateCommandHandler {
	return ChangeJobStateCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

func (h ChangeJobStateCommandHandler) HandleMarkMatched(ctx context.Context, cmd MarkJobMatchedCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.mutate(ctx, cmd.ActorID(), cmd.JobID(), func(repo ports.JobRepository, j *job.Job) error {
		j.MarkMatched()
		return repo.Update(ctx, j)
	})
}

func (h ChangeJobStateCommandHandler) HandleMarkExpired(ctx context.Context, cmd MarkJobExpiredCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.mutate(ctx, cmd.ActorID(), cmd.JobID(), func(repo ports.JobRepository, j *job.Job) error {
		j.MarkExpired()
		return repo.Update(ctx, j)
	})
}

func (h ChangeJobStateCommandHandler) HandleRemove(ctx context.Context, cmd RemoveJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := h.mutate(ctx, cmd.ActorID(), cmd.JobID(), func(repo ports.JobRepository, j *job.Job) error {
		return repo.Remove(ctx, j.ID())
	})
	return err
}

func (h ChangeJobStateCommandHandler) mutate(
	ctx context.Context,
	actorID kernel.ID,
	jobID kernel.ID,
	change func(repo ports.JobRepository, j *job.Job) error,
) (*job.Job, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	aggregate, err := jobRepo.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err = aggregate.CheckOwner(actorID); err != nil {
		return nil, err
	}

	if err = change(jobRepo, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.invalidator.ActiveJobs(ctx)

	return aggregate, nil
}
