package queries

import (
	"errors"

	"jobmarket/internal/pkg/guard"
)

var ErrListActiveJobsQueryIsNotConstructed = errors.New(
	"ListActiveJobsQuery must be created via NewListActiveJobsQuery constructor",
)

// ListActiveJobsQuery retrieves every posting that is still open for applications.
type ListActiveJobsQuery struct {
	guard guard.ConstructorGuard
}

func NewListActiveJobsQuery() ListActiveJobsQuery {
	return ListActiveJobsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListActiveJobsQuery) Validate() error {
	return q.guard.Validate(ErrListActiveJobsQueryIsNotConstructed)
}
