package commands

import (
	"context"
)

// WithdrawMatchingCommandHandler soft-deletes an application after checking
// that the actor submitted it. Nobody is notified.
type WithdrawMatchingCommandHandler struct {
	uowFactory MatchingUoWFactory
}

func NewWithdrawMatchingCommandHandler(uowFactory MatchingUoWFactory) WithdrawMatchingCommandHandler {
	return WithdrawMatchingCommandHandler{uowFactory: uowFactory}
}

func (h WithdrawMatchingCommandHandler) Handle(ctx context.Context, cmd WithdrawMatchingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	matchingRepo := uow.MatchingRepository()

	application, err := matchingRepo.Get(ctx, cmd.MatchingID())
	if err != nil {
		return err
	}

	if err = application.CheckApplicant(cmd.CustomerID()); err != nil {
		return err
	}

	if err = matchingRepo.Remove(ctx, application.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
