package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to publish a new job posting.
//
// Example:
//
//	addr, _ := kernel.NewAddress("Seoul", "Jongno-gu", "Cheongun-dong")
//	cmd, err := NewCreateJobCommand(ownerID, job.Details{Title: "Move a sofa", Price: 30000}, addr)
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.ID
	details job.Details
	address kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateJobCommand(ownerID kernel.ID, details job.Details, address kernel.Address) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setAddress(address),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) OwnerID() kernel.ID {
	return c.ownerID
}

func (c CreateJobCommand) Details() job.Details {
	return c.details
}

func (c CreateJobCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateJobCommand) setOwnerID(ownerID kernel.ID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateJobCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
