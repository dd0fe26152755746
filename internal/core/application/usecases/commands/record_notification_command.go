package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/pkg/guard"
)

var ErrRecordNotificationCommandIsNotConstructed = errors.New(
	"RecordNotificationCommand must be created via NewRecordNotificationCommand constructor",
)

// RecordNotificationCommand stores the recipient's copy of a delivered event.
type RecordNotificationCommand struct {
	event notification.Event

	guard guard.ConstructorGuard
}

func NewRecordNotificationCommand(event notification.Event) (RecordNotificationCommand, error) {
	if err := event.Validate(); err != nil {
		return RecordNotificationCommand{}, err
	}

	return RecordNotificationCommand{
		event: event,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RecordNotificationCommand) Validate() error {
	return c.guard.Validate(ErrRecordNotificationCommandIsNotConstructed)
}

func (c RecordNotificationCommand) Event() notification.Event {
	return c.event
}
