package commands

import (
	"context"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/pkg/errs"
)

// CreateJobCommandHandler stores a new posting and drops the cached active
// listing once the posting is committed. No notification is published.
type CreateJobCommandHandler struct {
	uowFactory  JobUoWFactory
	invalidator CacheInvalidator
}

func NewCreateJobCommandHandler(uowFactory JobUoWFactory, invalidator CacheInvalidator) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle fails with ObjectNotFound when the owner or the location triple is unknown.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
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

	exists, err := uow.UserRepository().Exists(ctx, cmd.OwnerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("user", cmd.OwnerID())
	}

	code, err := uow.LocationRepository().Resolve(ctx, cmd.Address())
	if err != nil {
		return nil, err
	}

	aggregate, err := job.NewJob(cmd.OwnerID(), cmd.Details(), code)
	if err != nil {
		return nil, err
	}

	if err = uow.JobRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.invalidator.ActiveJobs(ctx)

	return aggregate, nil
}
