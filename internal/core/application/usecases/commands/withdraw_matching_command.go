package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/guard"
)

var ErrWithdrawMatchingCommandIsNotConstructed = errors.New(
	"WithdrawMatchingCommand must be created via NewWithdrawMatchingCommand constructor",
)

// WithdrawMatchingCommand is an applicant taking back their own application.
type WithdrawMatchingCommand struct {
	customerID kernel.ID
	matchingID kernel.ID

	guard guard.ConstructorGuard
}

func NewWithdrawMatchingCommand(customerID, matchingID kernel.ID) (WithdrawMatchingCommand, error) {
	if err := errors.Join(customerID.Validate(), matchingID.Validate()); err != nil {
		return WithdrawMatchingCommand{}, err
	}

	return WithdrawMatchingCommand{
		customerID: customerID,
		matchingID: matchingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c WithdrawMatchingCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawMatchingCommandIsNotConstructed)
}

func (c WithdrawMatchingCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c WithdrawMatchingCommand) MatchingID() kernel.ID {
	return c.matchingID
}
