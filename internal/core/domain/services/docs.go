// Package services provides domain services that coordinate several aggregates
// of the job marketplace.
//
// The package includes:
//   - MatchingReviewer: lets a job owner accept or reject an application and
//     produces the notification event for the applicant
package services
