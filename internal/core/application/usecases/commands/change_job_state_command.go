package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/guard"
)

var (
	ErrMarkJobMatchedCommandIsNotConstructed = errors.New(
		"MarkJobMatchedCommand must be created via NewMarkJobMatchedCommand constructor",
	)
	ErrMarkJobExpiredCommandIsNotConstructed = errors.New(
		"MarkJobExpiredCommand must be created via NewMarkJobExpiredCommand constructor",
	)
	ErrRemoveJobCommandIsNotConstructed = errors.New(
		"RemoveJobCommand must be created via NewRemoveJobCommand constructor",
	)
)

// ownedJobRef identifies a posting and the user acting on it.
type ownedJobRef struct {
	actorID kernel.ID
	jobID   kernel.ID

	guard guard.ConstructorGuard
}

func newOwnedJobRef(actorID, jobID kernel.ID) (ownedJobRef, error) {
	if err := errors.Join(actorID.Validate(), jobID.Validate()); err != nil {
		return ownedJobRef{}, err
	}
	return ownedJobRef{actorID: actorID, jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (r ownedJobRef) ActorID() kernel.ID {
	return r.actorID
}

func (r ownedJobRef) JobID() kernel.ID {
	return r.jobID
}

// MarkJobMatchedCommand flags a posting as filled.
type MarkJobMatchedCommand struct{ ownedJobRef }

func NewMarkJobMatchedCommand(actorID, jobID kernel.ID) (MarkJobMatchedCommand, error) {
	ref, err := newOwnedJobRef(actorID, jobID)
	if err != nil {
		return MarkJobMatchedCommand{}, err
	}
	return MarkJobMatchedCommand{ref}, nil
}

func (c MarkJobMatchedCommand) Validate() error {
	return c.guard.Validate(ErrMarkJobMatchedCommandIsNotConstructed)
}

// MarkJobExpiredCommand flags a posting as cancelled by its owner.
type MarkJobExpiredCommand struct{ ownedJobRef }

func NewMarkJobExpiredCommand(actorID, jobID kernel.ID) (MarkJobExpiredCommand, error) {
	ref, err := newOwnedJobRef(actorID, jobID)
	if err != nil {
		return MarkJobExpiredCommand{}, err
	}
	return MarkJobExpiredCommand{ref}, nil
}

func (c MarkJobExpiredCommand) Validate() error {
	return c.guard.Validate(ErrMarkJobExpiredCommandIsNotConstructed)
}

// RemoveJobCommand soft-deletes a posting.
type RemoveJobCommand struct{ ownedJobRef }

func NewRemoveJobCommand(actorID, jobID kernel.ID) (RemoveJobCommand, error) {
	ref, err := newOwnedJobRef(actorID, jobID)
	if err != nil {
		return RemoveJobCommand{}, err
	}
	return RemoveJobCommand{ref}, nil
}

func (c RemoveJobCommand) Validate() error {
	return c.guard.Validate(ErrRemoveJobCommandIsNotConstructed)
}
