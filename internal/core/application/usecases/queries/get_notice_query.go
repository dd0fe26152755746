package queries

import (
	"context"
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/ports"
	"jobmarket/internal/pkg/errs"
	"jobmarket/internal/pkg/guard"
)

var ErrGetNoticeQueryIsNotConstructed = errors.New(
	"GetNoticeQuery must be created via NewGetNoticeQuery constructor",
)

type GetNoticeQuery struct {
	noticeID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetNoticeQuery reports a non-positive id as ObjectNotFound.
func NewGetNoticeQuery(noticeID kernel.ID) (GetNoticeQuery, error) {
	if err := noticeID.Validate(); err != nil {
		return GetNoticeQuery{}, errs.NewObjectNotFoundErrorWithCause("notice", noticeID, err)
	}
	return GetNoticeQuery{noticeID: noticeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetNoticeQuery) Validate() error {
	return q.guard.Validate(ErrGetNoticeQueryIsNotConstructed)
}

func (q GetNoticeQuery) NoticeID() kernel.ID {
	return q.noticeID
}

type GetNoticeQueryHandler struct {
	notices ports.NoticeRepository
}

func NewGetNoticeQueryHandler(notices ports.NoticeRepository) GetNoticeQueryHandler {
	return GetNoticeQueryHandler{notices: notices}
}

func (h GetNoticeQueryHandler) Handle(ctx context.Context, query GetNoticeQuery) (NoticeView, error) {
	if err := query.Validate(); err != nil {
		return NoticeView{}, err
	}

	n, err := h.notices.Get(ctx, query.NoticeID())
	if err != nil {
		return NoticeView{}, err
	}
	return NewNoticeView(n), nil
}
