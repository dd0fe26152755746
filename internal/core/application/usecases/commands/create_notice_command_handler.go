package commands

import (
	"context"

	"jobmarket/internal/core/domain/model/notice"
)

// CreateNoticeCommandHandler stores a notice and drops every cached notice page.
type CreateNoticeCommandHandler struct {
	uowFactory  NoticeUoWFactory
	invalidator CacheInvalidator
}

func NewCreateNoticeCommandHandler(uowFactory NoticeUoWFactory, invalidator CacheInvalidator) CreateNoticeCommandHandler {
	return CreateNoticeCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

func (h CreateNoticeCommandHandler) Handle(ctx context.Context, cmd CreateNoticeCommand) (*notice.Notice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := notice.NewNotice(cmd.AuthorID(), cmd.Title(), cmd.Content())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NoticeRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.invalidator.NoticePages(ctx)

	return aggregate, nil
}
