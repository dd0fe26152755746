package notification

import (
	"errors"
	"time"

	"jobmarket/internal/core/domain/model/kernel"
)

var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via FromEvent or RestoreNotification",
)

// Snapshot is the persisted state used to rehydrate a Notification.
type Snapshot struct {
	ID          kernel.ID
	EventID     kernel.UUID
	RecipientID kernel.ID
	Type        Type
	JobID       kernel.ID
	CustomerID  kernel.ID
	OwnerID     kernel.ID
	CreatedAt   time.Time
}

// Notification is the stored, per-recipient record of an Event.
// At most one Notification exists per event id.
type Notification struct {
	id          kernel.ID
	eventID     kernel.UUID
	recipientID kernel.ID
	kind        Type
	jobID       kernel.ID
	customerID  kernel.ID
	ownerID     kernel.ID
	createdAt   time.Time

	isConstructed bool
}

// FromEvent builds the record delivered to the event's recipient.
func FromEvent(e Event) (*Notification, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		eventID:       e.ID(),
		recipientID:   e.Recipient(),
		kind:          e.Type(),
		jobID:         e.JobID(),
		customerID:    e.CustomerID(),
		ownerID:       e.OwnerID(),
		createdAt:     e.OccurredAt(),
		isConstructed: true,
	}, nil
}

func RestoreNotification(s Snapshot) (*Notification, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.EventID.Validate(),
		s.RecipientID.Validate(),
		s.Type.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            s.ID,
		eventID:       s.EventID,
		recipientID:   s.RecipientID,
		kind:          s.Type,
		jobID:         s.JobID,
		customerID:    s.CustomerID,
		ownerID:       s.OwnerID,
		createdAt:     s.CreatedAt,
		isConstructed: true,
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.ID {
	return n.id
}

func (n *Notification) EventID() kernel.UUID {
	return n.eventID
}

func (n *Notification) RecipientID() kernel.ID {
	return n.recipientID
}

func (n *Notification) Type() Type {
	return n.kind
}

func (n *Notification) JobID() kernel.ID {
	return n.jobID
}

func (n *Notification) CustomerID() kernel.ID {
	return n.customerID
}

func (n *Notification) OwnerID() kernel.ID {
	return n.ownerID
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// AssignID records the id chosen by the store.
func (n *Notification) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}
