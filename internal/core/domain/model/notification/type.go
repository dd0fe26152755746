package notification

import (
	"fmt"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/errs"
)

// Channel is the name of the pub/sub channel, subject or queue that carries events.
const Channel = "jobMatching"

// Type tags a notification event. The set is closed.
type Type string

const (
	JobApplied  Type = "JOB_APPLIED"
	JobAccepted Type = "JOB_ACCEPTED"
	JobDenied   Type = "JOB_DENIED"
)

// Types lists every known tag.
func Types() []Type {
	return []Type{JobApplied, JobAccepted, JobDenied}
}

func (t Type) Validate() error {
	switch t {
	case JobApplied, JobAccepted, JobDenied:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%q is not a known type", string(t)))
	}
}

func (t Type) String() string {
	return string(t)
}

// RecipientOf returns who should be told about an event of type t: the job
// owner learns about applications, the applicant learns about decisions.
func (t Type) RecipientOf(customerID, ownerID kernel.ID) kernel.ID {
	switch t {
	case JobApplied:
		return ownerID
	case JobAccepted, JobDenied:
		return customerID
	default:
		return 0
	}
}
