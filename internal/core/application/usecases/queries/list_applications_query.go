package queries

import (
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/guard"
)

var (
	ErrListApplicationsByCustomerQueryIsNotConstructed = errors.New(
		"ListApplicationsByCustomerQuery must be created via NewListApplicationsByCustomerQuery constructor",
	)
	ErrListApplicantsByOwnerQueryIsNotConstructed = errors.New(
		"ListApplicantsByOwnerQuery must be created via NewListApplicantsByOwnerQuery constructor",
	)
)

// ListApplicationsByCustomerQuery lists what a customer has applied to.
type ListApplicationsByCustomerQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

func NewListApplicationsByCustomerQuery(customerID kernel.ID) (ListApplicationsByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListApplicationsByCustomerQuery{}, err
	}
	return ListApplicationsByCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListApplicationsByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrListApplicationsByCustomerQueryIsNotConstructed)
}

func (q ListApplicationsByCustomerQuery) CustomerID() kernel.ID {
	return q.customerID
}

// ListApplicantsByOwnerQuery lists who applied to the postings of an owner.
type ListApplicantsByOwnerQuery struct {
	ownerID kernel.ID

	guard guard.ConstructorGuard
}

func NewListApplicantsByOwnerQuery(ownerID kernel.ID) (ListApplicantsByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListApplicantsByOwnerQuery{}, err
	}
	return ListApplicantsByOwnerQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListApplicantsByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrListApplicantsByOwnerQueryIsNotConstructed)
}

func (q ListApplicantsByOwnerQuery) OwnerID() kernel.ID {
	return q.ownerID
}
