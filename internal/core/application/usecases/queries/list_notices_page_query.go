package queries

import (
	"errors"
	"math"

	"jobmarket/internal/pkg/errs"
	"jobmarket/internal/pkg/guard"
)

const (
	MinPageLimit     = 1
	MaxPageLimit     = 100
	DefaultPageLimit = 10
)

var ErrListNoticesPageQueryIsNotConstructed = errors.New(
	"ListNoticesPageQuery must be created via NewListNoticesPageQuery constructor",
)

// ListNoticesPageQuery asks for one page of the notice list.
type ListNoticesPageQuery struct {
	page  int
	limit int

	guard guard.ConstructorGuard
}

// NewListNoticesPageQuery requires page >= 1 and limit within [MinPageLimit, MaxPageLimit].
// Pages whose offset would overflow int are rejected.
func NewListNoticesPageQuery(page, limit int) (ListNoticesPageQuery, error) {
	var errList []error
	if page < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded"))
	}
	if limit < MinPageLimit || limit > MaxPageLimit {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", limit, MinPageLimit, MaxPageLimit))
	} else if page > math.MaxInt/limit {
		// Offset must stay representable.
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt/limit))
	}
	if err := errors.Join(errList...); err != nil {
		return ListNoticesPageQuery{}, err
	}

	return ListNoticesPageQuery{page: page, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListNoticesPageQuery) Validate() error {
	return q.guard.Validate(ErrListNoticesPageQueryIsNotConstructed)
}

func (q ListNoticesPageQuery) Page() int {
	return q.page
}

func (q ListNoticesPageQuery) Limit() int {
	return q.limit
}

// Offset is the number of notices before the first one on this page.
func (q ListNoticesPageQuery) Offset() int {
	return (q.page - 1) * q.limit
}
