package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/location"
	"jobmarket/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created through
	// NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

	// ErrIdentityAlreadyAssigned is returned when the store tries to assign an id twice.
	ErrIdentityAlreadyAssigned = errors.New("job identity is already assigned")
)

// Details holds the owner-editable content of a posting.
type Details struct {
	Title    string
	Content  string
	PhotoURL *string
	Price    int64
	Category string
}

// Patch is a partial update of a posting. Nil fields are left untouched.
// An empty PhotoURL clears the photo.
type Patch struct {
	Title    *string
	Content  *string
	PhotoURL *string
	Price    *int64
	Category *string
	Location *location.Code
}

// Snapshot is the full persisted state used to rehydrate a Job.
type Snapshot struct {
	ID        kernel.ID
	OwnerID   kernel.ID
	Details   Details
	Location  location.Code
	Expired   bool
	Matched   bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Job is a job posting. It is the aggregate root for the listing lifecycle.
//
// Job follows these invariants:
//   - Owner must be a persisted user
//   - Title is required and price is never negative
//   - The location is stored as a reference-table code, never as free text
//   - A posting is listable only while it is neither expired, matched nor soft-deleted
//   - Only the owner may change it
type Job struct {
	id        kernel.ID
	ownerID   kernel.ID
	details   Details
	location  location.Code
	expired   bool
	matched   bool
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	isConstructed bool
}

// NewJob creates an unsaved posting with expired = matched = false.
// The identity is assigned by the store through AssignIdentity.
//
// Example:
//
//	j, err := job.NewJob(ownerID, job.Details{Title: "Move a sofa", Price: 30000}, code)
//	if err != nil {
//	    // validation failed
//	}
func NewJob(ownerID kernel.ID, details Details, code location.Code) (*Job, error) {
	j := &Job{isConstructed: true}

	if err := errors.Join(
		j.setOwner(ownerID),
		j.setDetails(details),
		j.setLocation(code),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob rehydrates a posting from persistence.
func RestoreJob(s Snapshot) (*Job, error) {
	j := &Job{
		expired:       s.Expired,
		matched:       s.Matched,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		deletedAt:     s.DeletedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		j.setOwner(s.OwnerID),
		j.setDetails(s.Details),
		j.setLocation(s.Location),
	); err != nil {
		return nil, err
	}
	j.id = s.ID

	return j, nil
}

// Validate ensures the Job was built through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// AssignIdentity records the id and creation time chosen by the store.
// It may be called once, on a job built with NewJob.
func (j *Job) AssignIdentity(id kernel.ID, createdAt time.Time) error {
	if !j.id.IsZero() {
		return ErrIdentityAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}

	j.id = id
	j.createdAt = createdAt
	j.updatedAt = createdAt
	return nil
}

func (j *Job) ID() kernel.ID {
	return j.id
}

func (j *Job) OwnerID() kernel.ID {
	return j.ownerID
}

func (j *Job) Details() Details {
	return j.details
}

func (j *Job) Location() location.Code {
	return j.location
}

func (j *Job) IsExpired() bool {
	return j.expired
}

func (j *Job) IsMatched() bool {
	return j.matched
}

func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

func (j *Job) UpdatedAt() time.Time {
	return j.updatedAt
}

func (j *Job) DeletedAt() *time.Time {
	return j.deletedAt
}

func (j *Job) IsDeleted() bool {
	return j.deletedAt != nil
}

// IsListable reports whether the posting belongs in the active listing.
func (j *Job) IsListable() bool {
	return !j.expired && !j.matched && !j.IsDeleted()
}

// IsOwnedBy reports whether userID owns the posting.
func (j *Job) IsOwnedBy(userID kernel.ID) bool {
	return j.ownerID == userID
}

// CheckOwner returns an AccessDeniedError unless userID owns the posting.
// Every mutation of a persisted posting calls it before touching state.
func (j *Job) CheckOwner(userID kernel.ID) error {
	if !j.IsOwnedBy(userID) {
		return errs.NewAccessDeniedError("job "+j.id.String(), userID)
	}
	return nil
}

// Apply merges a patch into the posting. Either the whole patch applies or
// nothing changes.
func (j *Job) Apply(p Patch) error {
	details := j.details
	code := j.location

	if p.Title != nil {
		details.Title = *p.Title
	}
	if p.Content != nil {
		details.Content = *p.Content
	}
	if p.PhotoURL != nil {
		details.PhotoURL = p.PhotoURL
	}
	if p.Price != nil {
		details.Price = *p.Price
	}
	if p.Category != nil {
		details.Category = *p.Category
	}
	if p.Location != nil {
		code = *p.Location
	}

	next := *j
	if err := errors.Join(next.setDetails(details), next.setLocation(code)); err != nil {
		return err
	}

	j.details = next.details
	j.location = next.location
	return nil
}

// MarkMatched flags the posting as filled. Repeating it is a no-op.
func (j *Job) MarkMatched() {
	j.matched = true
}

// MarkExpired flags the posting as cancelled by its owner. Repeating it is a no-op.
func (j *Job) MarkExpired() {
	j.expired = true
}

func (j *Job) setOwner(ownerID kernel.ID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("owner", err)
	}
	j.ownerID = ownerID
	return nil
}

func (j *Job) setDetails(d Details) error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if d.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is less than 0", d.Price))
	}
	if d.PhotoURL != nil && strings.TrimSpace(*d.PhotoURL) == "" {
		d.PhotoURL = nil
	}

	j.details = d
	return nil
}

func (j *Job) setLocation(code location.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	j.location = code
	return nil
}
