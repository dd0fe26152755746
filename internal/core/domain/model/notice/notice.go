package notice

import (
	"errors"
	"strings"
	"time"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/errs"
)

var (
	// ErrNoticeIsNotConstructed is returned when a Notice was not created through
	// NewNotice or RestoreNotice.
	ErrNoticeIsNotConstructed = errors.New("Notice must be created via NewNotice constructor")

	// ErrIdentityAlreadyAssigned is returned when the store tries to assign an id twice.
	ErrIdentityAlreadyAssigned = errors.New("notice identity is already assigned")
)

// Patch is a partial update of a notice. Nil fields are left untouched.
type Patch struct {
	Title   *string
	Content *string
}

// Snapshot is the persisted state used to rehydrate a Notice.
type Snapshot struct {
	ID        kernel.ID
	AuthorID  kernel.ID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Notice is an announcement published by a user. Notices are hard-deleted.
type Notice struct {
	id        kernel.ID
	authorID  kernel.ID
	title     string
	content   string
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

func NewNotice(authorID kernel.ID, title, content string) (*Notice, error) {
	n := &Notice{isConstructed: true}

	if err := errors.Join(
		n.setAuthor(authorID),
		n.setTitle(title),
		n.setContent(content),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func RestoreNotice(s Snapshot) (*Notice, error) {
	n := &Notice{
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		n.setAuthor(s.AuthorID),
		n.setTitle(s.Title),
		n.setContent(s.Content),
	); err != nil {
		return nil, err
	}
	n.id = s.ID

	return n, nil
}

func (n *Notice) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNoticeIsNotConstructed
	}
	return nil
}

// AssignIdentity records the id and timestamps chosen by the store.
func (n *Notice) AssignIdentity(id kernel.ID, createdAt time.Time) error {
	if !n.id.IsZero() {
		return ErrIdentityAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}

	n.id = id
	n.createdAt = createdAt
	n.updatedAt = createdAt
	return nil
}

func (n *Notice) ID() kernel.ID {
	return n.id
}

func (n *Notice) AuthorID() kernel.ID {
	return n.authorID
}

func (n *Notice) Title() string {
	return n.title
}

func (n *Notice) Content() string {
	return n.content
}

func (n *Notice) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notice) UpdatedAt() time.Time {
	return n.updatedAt
}

// Apply updates the notice atomically: on error nothing is changed.
func (n *Notice) Apply(p Patch) error {
	next := *n

	var errList []error
	if p.Title != nil {
		errList = append(errList, next.setTitle(*p.Title))
	}
	if p.Content != nil {
		errList = append(errList, next.setContent(*p.Content))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	*n = next
	return nil
}

func (n *Notice) setAuthor(authorID kernel.ID) error {
	if err := authorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("author", err)
	}
	n.authorID = authorID
	return nil
}

func (n *Notice) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notice) setContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errs.NewValueIsRequiredError("content")
	}
	n.content = content
	return nil
}
