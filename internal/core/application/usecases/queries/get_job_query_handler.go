package queries

import (
	"context"

	"jobmarket/internal/core/ports"
)

// GetJobQueryHandler loads one posting and resolves its stored location code
// back into an address. A posting whose code is missing from the reference
// table yields a ReferenceDataMissingError, not an ObjectNotFoundError.
type GetJobQueryHandler struct {
	jobs      ports.JobRepository
	locations ports.LocationRepository
}

func NewGetJobQueryHandler(jobs ports.JobRepository, locations ports.LocationRepository) GetJobQueryHandler {
	return GetJobQueryHandler{jobs: jobs, locations: locations}
}

func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (JobDetailView, error) {
	if err := query.Validate(); err != nil {
		return JobDetailView{}, err
	}

	j, err := h.jobs.Get(ctx, query.JobID())
	if err != nil {
		return JobDetailView{}, err
	}

	loc, err := h.locations.Lookup(ctx, j.Location())
	if err != nil {
		return JobDetailView{}, err
	}

	d := j.Details()
	addr := loc.Address()
	return JobDetailView{
		ID:           j.ID().Int64(),
		OwnerID:      j.OwnerID().Int64(),
		Title:        d.Title,
		Content:      d.Content,
		PhotoURL:     d.PhotoURL,
		Price:        d.Price,
		City:         addr.City(),
		District:     addr.District(),
		Neighborhood: addr.Neighborhood(),
		Category:     d.Category,
		Expired:      j.IsExpired(),
		Matched:      j.IsMatched(),
		CreatedAt:    j.CreatedAt(),
		UpdatedAt:    j.UpdatedAt(),
	}, nil
}
