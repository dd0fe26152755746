package commands

import (
	"context"

	"jobmarket/internal/core/domain/model/notice"
)

// NoticeCommandHandler runs edits and removals of existing notices. Both drop
// every cached notice page after the change is committed.
type NoticeCommandHandler struct {
	uowFactory  NoticeUoWFactory
	invalidator CacheInvalidator
}

func NewNoticeCommandHandler(uowFactory NoticeUoWFactory, invalidator CacheInvalidator) NoticeCommandHandler {
	return NoticeCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// HandleUpdate returns the notice as stored after the update.
func (h NoticeCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateNoticeCommand) (*notice.Notice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noticeRepo := uow.NoticeRepository()

	aggregate, err := noticeRepo.Get(ctx, cmd.NoticeID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Apply(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = noticeRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	stored, err := noticeRepo.Get(ctx, cmd.NoticeID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.invalidator.NoticePages(ctx)

	return stored, nil
}

func (h NoticeCommandHandler) HandleRemove(ctx context.Context, cmd RemoveNoticeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NoticeRepository().Remove(ctx, cmd.NoticeID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.NoticePages(ctx)

	return nil
}
