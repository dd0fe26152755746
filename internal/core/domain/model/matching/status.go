package matching

import (
	"errors"
	"fmt"

	"jobmarket/internal/pkg/errs"
)

// ErrAlreadyDecided is returned when accept or reject is attempted on a
// matching that has already reached a terminal status.
var ErrAlreadyDecided = errs.NewValueIsInvalidErrorWithCause(
	"matching status",
	errors.New("application has already been accepted or rejected"),
)

// Status is the lifecycle state of an application.
//
// State transitions:
//
//	Pending ──┬──> Matched   (terminal)
//	          └──> Rejected  (terminal)
//
// The store keeps the state as two flags (matched, rejected); Status makes the
// "at most one of them, never un-set" rule structural.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Pending is the initial state: neither matched nor rejected.
	Pending
	// Matched means the job owner accepted the application.
	Matched
	// Rejected means the job owner turned the application down.
	Rejected
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Matched:
		return "Matched"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s != Pending && s != Matched && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Matched || s == Rejected
}

// Accept transitions Pending -> Matched.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return s, ErrAlreadyDecided
	}
	return Matched, nil
}

// Reject transitions Pending -> Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return s, ErrAlreadyDecided
	}
	return Rejected, nil
}

// Flags returns the (matched, rejected) pair stored for s.
func (s Status) Flags() (matched bool, rejected bool) {
	return s == Matched, s == Rejected
}

// StatusFromFlags converts stored flags back into a Status. Both flags set at
// once is a corrupted row.
func StatusFromFlags(matched, rejected bool) (Status, error) {
	switch {
	case matched && rejected:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("matched and rejected are both set"),
		)
	case matched:
		return Matched, nil
	case rejected:
		return Rejected, nil
	default:
		return Pending, nil
	}
}
