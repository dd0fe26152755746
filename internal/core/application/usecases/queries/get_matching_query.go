package queries

import (
	"context"
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/ports"
	"jobmarket/internal/pkg/guard"
)

var ErrGetMatchingQueryIsNotConstructed = errors.New(
	"GetMatchingQuery must be created via NewGetMatchingQuery constructor",
)

type GetMatchingQuery struct {
	matchingID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetMatchingQuery(matchingID kernel.ID) (GetMatchingQuery, error) {
	if err := matchingID.Validate(); err != nil {
		return GetMatchingQuery{}, err
	}
	return GetMatchingQuery{matchingID: matchingID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMatchingQuery) Validate() error {
	return q.guard.Validate(ErrGetMatchingQueryIsNotConstructed)
}

func (q GetMatchingQuery) MatchingID() kernel.ID {
	return q.matchingID
}

type GetMatchingQueryHandler struct {
	matchings ports.MatchingRepository
}

func NewGetMatchingQueryHandler(matchings ports.MatchingRepository) GetMatchingQueryHandler {
	return GetMatchingQueryHandler{matchings: matchings}
}

func (h GetMatchingQueryHandler) Handle(ctx context.Context, query GetMatchingQuery) (MatchingView, error) {
	if err := query.Validate(); err != nil {
		return MatchingView{}, err
	}

	m, err := h.matchings.Get(ctx, query.MatchingID())
	if err != nil {
		return MatchingView{}, err
	}
	return NewMatchingView(m), nil
}
