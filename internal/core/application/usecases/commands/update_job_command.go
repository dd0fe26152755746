package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand is a partial edit of a posting by its owner. A non-nil
// address moves the posting to the location code of that address.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.ID
	jobID   kernel.ID
	patch   job.Patch
	address *kernel.Address

	guard guard.ConstructorGuard
}

func NewUpdateJobCommand(
	actorID kernel.ID,
	jobID kernel.ID,
	patch job.Patch,
	address *kernel.Address,
) (UpdateJobCommand, error) {
	cmd := UpdateJobCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	var addrErr error
	if address != nil {
		addrErr = address.Validate()
		cmd.address = address
	}

	if err := errors.Join(
		actorID.Validate(),
		jobID.Validate(),
		addrErr,
	); err != nil {
		return UpdateJobCommand{}, err
	}

	cmd.actorID = actorID
	cmd.jobID = jobID
	cmd.patch.Location = nil

	return cmd, nil
}

func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

func (c UpdateJobCommand) ActorID() kernel.ID {
	return c.actorID
}

func (c UpdateJobCommand) JobID() kernel.ID {
	return c.jobID
}

func (c UpdateJobCommand) Patch() job.Patch {
	return c.patch
}

// Address returns the new address, or nil when the location is unchanged.
func (c UpdateJobCommand) Address() *kernel.Address {
	return c.address
}
