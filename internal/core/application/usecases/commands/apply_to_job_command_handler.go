package commands

import (
	"context"

	"jobmarket/internal/core/domain/model/matching"
	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/pkg/errs"
)

// ApplyToJobCommandHandler records an application and tells the job owner
// about it. The JOB_APPLIED event is published only after the application is
// committed; a failed publish does not undo it.
//
// Example:
//
//	cmd, _ := NewApplyToJobCommand(customerID, jobID)
//	m, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // customer or job does not exist
//	}
type ApplyToJobCommandHandler struct {
	uowFactory MatchingUoWFactory
	notifier   EventNotifier
}

func NewApplyToJobCommandHandler(uowFactory MatchingUoWFactory, notifier EventNotifier) ApplyToJobCommandHandler {
	return ApplyToJobCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h ApplyToJobCommandHandler) Handle(ctx context.Context, cmd ApplyToJobCommand) (*matching.Matching, error) {
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

	exists, err := uow.UserRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("user", cmd.CustomerID())
	}

	posting, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	application, err := matching.NewMatching(cmd.CustomerID(), posting.ID())
	if err != nil {
		return nil, err
	}

	event, err := notification.NewJobAppliedEvent(posting.ID(), cmd.CustomerID(), posting.OwnerID())
	if err != nil {
		return nil, err
	}

	if err = uow.MatchingRepository().Add(ctx, application); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, event)

	return application, nil
}
