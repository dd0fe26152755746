package queries

import (
	"context"
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/ports"
	"jobmarket/internal/pkg/guard"
)

var ErrListJobsByLocationQueryIsNotConstructed = errors.New(
	"ListJobsByLocationQuery must be created via NewListJobsByLocationQuery constructor",
)

type ListJobsByLocationQuery struct {
	address kernel.Address

	guard guard.ConstructorGuard
}

func NewListJobsByLocationQuery(address kernel.Address) (ListJobsByLocationQuery, error) {
	if err := address.Validate(); err != nil {
		return ListJobsByLocationQuery{}, err
	}
	return ListJobsByLocationQuery{address: address, guard: guard.NewConstructorGuard()}, nil
}

func (q ListJobsByLocationQuery) Validate() error {
	return q.guard.Validate(ErrListJobsByLocationQueryIsNotConstructed)
}

func (q ListJobsByLocationQuery) Address() kernel.Address {
	return q.address
}

// ListJobsByLocationQueryHandler lists postings stored under the location code
// of an address. It is not cached. Expired and matched postings are included.
type ListJobsByLocationQueryHandler struct {
	locations ports.LocationRepository
	reader    ports.JobReader
}

func NewListJobsByLocationQueryHandler(
	locations ports.LocationRepository,
	reader ports.JobReader,
) ListJobsByLocationQueryHandler {
	return ListJobsByLocationQueryHandler{locations: locations, reader: reader}
}

func (h ListJobsByLocationQueryHandler) Handle(ctx context.Context, query ListJobsByLocationQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	code, err := h.locations.Resolve(ctx, query.Address())
	if err != nil {
		return nil, err
	}

	jobs, err := h.reader.ListByLocation(ctx, code)
	if err != nil {
		return nil, err
	}

	return newJobViews(jobs), nil
}
