package commands

import (
	"context"

	"jobmarket/internal/core/domain/model/job"
)

// UpdateJobCommandHandler applies an owner's edit to a posting.
// The ownership check runs before anything else is resolved or changed.
type UpdateJobCommandHandler struct {
	uowFactory  JobUoWFactory
	invalidator CacheInvalidator
}

func NewUpdateJobCommandHandler(uowFactory JobUoWFactory, invalidator CacheInvalidator) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

func (h UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	aggregate, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.CheckOwner(cmd.ActorID()); err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	if addr := cmd.Address(); addr != nil {
		code, resolveErr := uow.LocationRepository().Resolve(ctx, *addr)
		if resolveErr != nil {
			return nil, resolveErr
		}
		patch.Location = &code
	}

	if err = aggregate.Apply(patch); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.invalidator.ActiveJobs(ctx)

	return aggregate, nil
}
