package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/notice"
	"jobmarket/internal/pkg/errs"
	"jobmarket/internal/pkg/guard"
)

var (
	ErrUpdateNoticeCommandIsNotConstructed = errors.New(
		"UpdateNoticeCommand must be created via NewUpdateNoticeCommand constructor",
	)
	ErrRemoveNoticeCommandIsNotConstructed = errors.New(
		"RemoveNoticeCommand must be created via NewRemoveNoticeCommand constructor",
	)
)

// noticeID rejects non-positive ids as ObjectNotFound: such a notice can never exist.
func noticeID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewObjectNotFoundErrorWithCause("notice", id, err)
	}
	return nil
}

type UpdateNoticeCommand struct {
	noticeID kernel.ID
	patch    notice.Patch

	guard guard.ConstructorGuard
}

func NewUpdateNoticeCommand(id kernel.ID, patch notice.Patch) (UpdateNoticeCommand, error) {
	if err := noticeID(id); err != nil {
		return UpdateNoticeCommand{}, err
	}

	return UpdateNoticeCommand{
		noticeID: id,
		patch:    patch,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateNoticeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateNoticeCommandIsNotConstructed)
}

func (c UpdateNoticeCommand) NoticeID() kernel.ID {
	return c.noticeID
}

func (c UpdateNoticeCommand) Patch() notice.Patch {
	return c.patch
}

type RemoveNoticeCommand struct {
	noticeID kernel.ID

	guard guard.ConstructorGuard
}

func NewRemoveNoticeCommand(id kernel.ID) (RemoveNoticeCommand, error) {
	if err := noticeID(id); err != nil {
		return RemoveNoticeCommand{}, err
	}

	return RemoveNoticeCommand{
		noticeID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveNoticeCommand) Validate() error {
	return c.guard.Validate(ErrRemoveNoticeCommandIsNotConstructed)
}

func (c RemoveNoticeCommand) NoticeID() kernel.ID {
	return c.noticeID
}
