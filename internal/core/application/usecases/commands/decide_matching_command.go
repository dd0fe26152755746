package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/services"
	"jobmarket/internal/pkg/guard"
)

var ErrDecideMatchingCommandIsNotConstructed = errors.New(
	"DecideMatchingCommand must be created via NewAcceptMatchingCommand or NewRejectMatchingCommand",
)

// DecideMatchingCommand is a job owner's accept or reject of an application.
type DecideMatchingCommand struct {
	actorID    kernel.ID
	matchingID kernel.ID
	decision   services.Decision

	guard guard.ConstructorGuard
}

func NewAcceptMatchingCommand(actorID, matchingID kernel.ID) (DecideMatchingCommand, error) {
	return newDecideMatchingCommand(actorID, matchingID, services.Accept)
}

func NewRejectMatchingCommand(actorID, matchingID kernel.ID) (DecideMatchingCommand, error) {
	return newDecideMatchingCommand(actorID, matchingID, services.Reject)
}

func newDecideMatchingCommand(actorID, matchingID kernel.ID, decision services.Decision) (DecideMatchingCommand, error) {
	if err := errors.Join(actorID.Validate(), matchingID.Validate()); err != nil {
		return DecideMatchingCommand{}, err
	}

	return DecideMatchingCommand{
		actorID:    actorID,
		matchingID: matchingID,
		decision:   decision,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DecideMatchingCommand) Validate() error {
	return c.guard.Validate(ErrDecideMatchingCommandIsNotConstructed)
}

func (c DecideMatchingCommand) ActorID() kernel.ID {
	return c.actorID
}

func (c DecideMatchingCommand) MatchingID() kernel.ID {
	return c.matchingID
}

func (c DecideMatchingCommand) Decision() services.Decision {
	return c.decision
}
