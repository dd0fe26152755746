package notification

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobmarket/internal/core/domain/model/kernel"
)

// ErrEventIsNotConstructed is returned when an Event was not created through a constructor.
var ErrEventIsNotConstructed = errors.New("Event must be created via one of the NewJob*Event constructors")

// Event is the message published on Channel whenever an application changes state.
// It always carries the (job, customer, owner) triple plus a unique id that
// consumers use to drop duplicate deliveries.
type Event struct {
	id         kernel.UUID
	kind       Type
	jobID      kernel.ID
	customerID kernel.ID
	ownerID    kernel.ID
	occurredAt time.Time

	isConstructed bool
}

// NewJobAppliedEvent is published when a customer applies to a job.
func NewJobAppliedEvent(jobID, customerID, ownerID kernel.ID) (Event, error) {
	return newEvent(JobApplied, jobID, customerID, ownerID)
}

// NewJobAcceptedEvent is published when the job owner accepts an application.
func NewJobAcceptedEvent(jobID, customerID, ownerID kernel.ID) (Event, error) {
	return newEvent(JobAccepted, jobID, customerID, ownerID)
}

// NewJobDeniedEvent is published when the job owner rejects an application.
func NewJobDeniedEvent(jobID, customerID, ownerID kernel.ID) (Event, error) {
	return newEvent(JobDenied, jobID, customerID, ownerID)
}

func newEvent(kind Type, jobID, customerID, ownerID kernel.ID) (Event, error) {
	e := Event{
		id:            kernel.NewUUID(),
		kind:          kind,
		jobID:         jobID,
		customerID:    customerID,
		ownerID:       ownerID,
		occurredAt:    time.Now().UTC(),
		isConstructed: true,
	}
	if err := e.validateFields(); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (e Event) Validate() error {
	if !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

func (e Event) ID() kernel.UUID {
	return e.id
}

func (e Event) Type() Type {
	return e.kind
}

func (e Event) JobID() kernel.ID {
	return e.jobID
}

func (e Event) CustomerID() kernel.ID {
	return e.customerID
}

func (e Event) OwnerID() kernel.ID {
	return e.ownerID
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}

// Recipient is the user the event should be delivered to.
func (e Event) Recipient() kernel.ID {
	return e.kind.RecipientOf(e.customerID, e.ownerID)
}

func (e Event) validateFields() error {
	return errors.Join(
		e.kind.Validate(),
		e.id.Validate(),
		wrapID("jobId", e.jobID),
		wrapID("customerId", e.customerID),
		wrapID("ownerId", e.ownerID),
	)
}

func wrapID(name string, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

type wireEvent struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	JobID      int64     `json:"jobId"`
	CustomerID int64     `json:"customerId"`
	OwnerID    int64     `json:"ownerId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// MarshalJSON encodes the event in its wire form.
func (e Event) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(wireEvent{
		ID:         e.id.String(),
		Type:       e.kind,
		JobID:      e.jobID.Int64(),
		CustomerID: e.customerID.Int64(),
		OwnerID:    e.ownerID.Int64(),
		OccurredAt: e.occurredAt,
	})
}

// UnmarshalJSON decodes the wire form and refuses unknown types or missing references.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	id, err := kernel.UUIDFromString(w.ID)
	if err != nil {
		return fmt.Errorf("event id: %w", err)
	}

	decoded := Event{
		id:            id,
		kind:          w.Type,
		jobID:         kernel.ID(w.JobID),
		customerID:    kernel.ID(w.CustomerID),
		ownerID:       kernel.ID(w.OwnerID),
		occurredAt:    w.OccurredAt,
		isConstructed: true,
	}
	if err := decoded.validateFields(); err != nil {
		return err
	}

	*e = decoded
	return nil
}

// Encode is a shorthand for json.Marshal used by channel adapters.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses a channel message body.
func Decode(body []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}
