package services

import (
	"errors"
	"fmt"

	"jobmarket/internal/core/domain/model/job"
	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/matching"
	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/pkg/errs"
)

// ErrMatchingJobMismatch is returned when the loaded job is not the one the
// application refers to.
var ErrMatchingJobMismatch = errors.New("matching does not belong to the given job")

// Decision is what the job owner does with an application.
type Decision int

const (
	Accept Decision = iota + 1
	Reject
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// MatchingReviewer is a domain service that lets a job owner decide an application.
//
// Business rules:
//   - Only the owner of the job the application refers to may decide it
//   - The ownership check runs before any state change
//   - A decided application cannot be decided again
//   - Every successful decision yields exactly one event for the applicant
//
// Example usage:
//
//	reviewer := services.NewMatchingReviewer()
//	event, err := reviewer.Review(actorID, j, m, services.Accept)
//	if errors.Is(err, errs.ErrAccessDenied) {
//	    // actor does not own the job
//	}
//	// persist m, commit, then publish event
type MatchingReviewer struct{}

func NewMatchingReviewer() MatchingReviewer {
	return MatchingReviewer{}
}

// Review applies the decision to m and returns the event to publish once the
// new state is stored. On error m is unchanged.
func (r MatchingReviewer) Review(
	actorID kernel.ID,
	j *job.Job,
	m *matching.Matching,
	decision Decision,
) (notification.Event, error) {
	if err := errors.Join(j.Validate(), m.Validate()); err != nil {
		return notification.Event{}, err
	}

	if m.JobID() != j.ID() {
		return notification.Event{}, fmt.Errorf("%w: matching %s, job %s", ErrMatchingJobMismatch, m.ID(), j.ID())
	}

	if err := j.CheckOwner(actorID); err != nil {
		return notification.Event{}, err
	}

	switch decision {
	case Accept:
		if err := m.Accept(); err != nil {
			return notification.Event{}, err
		}
		return notification.NewJobAcceptedEvent(j.ID(), m.CustomerID(), j.OwnerID())
	case Reject:
		if err := m.Reject(); err != nil {
			return notification.Event{}, err
		}
		return notification.NewJobDeniedEvent(j.ID(), m.CustomerID(), j.OwnerID())
	default:
		return notification.Event{}, errs.NewValueIsInvalidError("decision")
	}
}
