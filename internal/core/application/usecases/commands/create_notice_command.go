package commands

import (
	"errors"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/guard"
)

var ErrCreateNoticeCommandIsNotConstructed = errors.New(
	"CreateNoticeCommand must be created via NewCreateNoticeCommand constructor",
)

type CreateNoticeCommand struct {
	authorID kernel.ID
	title    string
	content  string

	guard guard.ConstructorGuard
}

// NewCreateNoticeCommand checks only the author id; title and content are
// validated by the Notice aggregate.
func NewCreateNoticeCommand(authorID kernel.ID, title, content string) (CreateNoticeCommand, error) {
	if err := authorID.Validate(); err != nil {
		return CreateNoticeCommand{}, err
	}

	return CreateNoticeCommand{
		authorID: authorID,
		title:    title,
		content:  content,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateNoticeCommand) Validate() error {
	return c.guard.Validate(ErrCreateNoticeCommandIsNotConstructed)
}

func (c CreateNoticeCommand) AuthorID() kernel.ID {
	return c.authorID
}

func (c CreateNoticeCommand) Title() string {
	return c.title
}

func (c CreateNoticeCommand) Content() string {
	return c.content
}
