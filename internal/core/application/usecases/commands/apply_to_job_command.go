package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/guard"
)

var ErrApplyToJobCommandIsNotConstructed = errors.New(
	"ApplyToJobCommand must be created via NewApplyToJobCommand constructor",
)

// ApplyToJobCommand is a customer's application to a posting.
type ApplyToJobCommand struct {
	customerID kernel.ID
	jobID      kernel.ID

	guard guard.ConstructorGuard
}

func NewApplyToJobCommand(customerID, jobID kernel.ID) (ApplyToJobCommand, error) {
	if err := errors.Join(customerID.Validate(), jobID.Validate()); err != nil {
		return ApplyToJobCommand{}, err
	}

	return ApplyToJobCommand{
		customerID: customerID,
		jobID:      jobID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyToJobCommand) Validate() error {
	return c.guard.Validate(ErrApplyToJobCommandIsNotConstructed)
}

func (c ApplyToJobCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c ApplyToJobCommand) JobID() kernel.ID {
	return c.jobID
}
