package commands

import (
	"context"

	"jobmarket/internal/core/domain/model/matching"
	"jobmarket/internal/core/domain/services"
)

// DecideMatchingCommandHandler accepts or rejects an application on behalf of
// the job owner.
//
// The new state is committed first and the JOB_ACCEPTED or JOB_DENIED event is
// published afterwards, so no event is ever emitted for a transition that was
// not stored. Decisions on an already decided application fail with
// matching.ErrAlreadyDecided and publish nothing.
type DecideMatchingCommandHandler struct {
	uowFactory MatchingUoWFactory
	notifier   EventNotifier
	reviewer   services.MatchingReviewer
}

func NewDecideMatchingCommandHandler(uowFactory MatchingUoWFactory, notifier EventNotifier) DecideMatchingCommandHandler {
	return DecideMatchingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		reviewer:   services.NewMatchingReviewer(),
	}
}

func (h DecideMatchingCommandHandler) Handle(ctx context.Context, cmd DecideMatchingCommand) (*matching.Matching, error) {
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

	matchingRepo := uow.MatchingRepository()

	application, err := matchingRepo.Get(ctx, cmd.MatchingID())
	if err != nil {
		return nil, err
	}

	posting, err := uow.JobRepository().Get(ctx, application.JobID())
	if err != nil {
		return nil, err
	}

	event, err := h.reviewer.Review(cmd.ActorID(), posting, application, cmd.Decision())
	if err != nil {
		return nil, err
	}

	if err = matchingRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, event)

	return application, nil
}
