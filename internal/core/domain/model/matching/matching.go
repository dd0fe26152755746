package matching

import (
	"errors"
	"time"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/errs"
)

var (
	// ErrMatchingIsNotConstructed is returned when a Matching instance was not created
	// through NewMatching or RestoreMatching.
	ErrMatchingIsNotConstructed = errors.New("Matching must be created via NewMatching constructor")

	// ErrIdentityAlreadyAssigned is returned when the store tries to assign an id twice.
	ErrIdentityAlreadyAssigned = errors.New("matching identity is already assigned")
)

// Snapshot is the persisted state used to rehydrate a Matching.
type Snapshot struct {
	ID         kernel.ID
	CustomerID kernel.ID
	JobID      kernel.ID
	Matched    bool
	Rejected   bool
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

// Matching is an application by a customer to a job posting.
//
// Matching follows these invariants:
//   - It references a persisted customer and a persisted job
//   - It starts Pending; at most one of matched/rejected ever becomes true
//   - Once decided it never changes state again
//   - The applicant may withdraw it; only the job owner may decide it
type Matching struct {
	id         kernel.ID
	customerID kernel.ID
	jobID      kernel.ID
	status     Status
	createdAt  time.Time
	deletedAt  *time.Time

	isConstructed bool
}

// NewMatching creates an unsaved, pending application.
func NewMatching(customerID, jobID kernel.ID) (*Matching, error) {
	m := &Matching{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setCustomer(customerID),
		m.setJob(jobID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMatching rehydrates an application from persistence.
func RestoreMatching(s Snapshot) (*Matching, error) {
	status, statusErr := StatusFromFlags(s.Matched, s.Rejected)

	m := &Matching{
		status:        status,
		createdAt:     s.CreatedAt,
		deletedAt:     s.DeletedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.ID.Validate(),
		m.setCustomer(s.CustomerID),
		m.setJob(s.JobID),
		statusErr,
	); err != nil {
		return nil, err
	}
	m.id = s.ID

	return m, nil
}

// Validate ensures the Matching was built through a constructor.
func (m *Matching) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMatchingIsNotConstructed
	}
	return nil
}

// AssignIdentity records the id and creation time chosen by the store.
func (m *Matching) AssignIdentity(id kernel.ID, createdAt time.Time) error {
	if !m.id.IsZero() {
		return ErrIdentityAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}

	m.id = id
	m.createdAt = createdAt
	return nil
}

func (m *Matching) ID() kernel.ID {
	return m.id
}

func (m *Matching) CustomerID() kernel.ID {
	return m.customerID
}

func (m *Matching) JobID() kernel.ID {
	return m.jobID
}

func (m *Matching) Status() Status {
	return m.status
}

func (m *Matching) IsMatched() bool {
	return m.status == Matched
}

func (m *Matching) IsRejected() bool {
	return m.status == Rejected
}

func (m *Matching) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Matching) DeletedAt() *time.Time {
	return m.deletedAt
}

// CheckApplicant returns an AccessDeniedError unless userID submitted the application.
func (m *Matching) CheckApplicant(userID kernel.ID) error {
	if m.customerID != userID {
		return errs.NewAccessDeniedError("matching "+m.id.String(), userID)
	}
	return nil
}

// Accept moves a pending application to Matched.
func (m *Matching) Accept() error {
	next, err := m.status.Accept()
	if err != nil {
		return err
	}
	m.status = next
	return nil
}

// Reject moves a pending application to Rejected.
func (m *Matching) Reject() error {
	next, err := m.status.Reject()
	if err != nil {
		return err
	}
	m.status = next
	return nil
}

func (m *Matching) setCustomer(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer", err)
	}
	m.customerID = customerID
	return nil
}

func (m *Matching) setJob(jobID kernel.ID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("job", err)
	}
	m.jobID = jobID
	return nil
}
